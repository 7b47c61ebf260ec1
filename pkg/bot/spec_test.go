package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpec_Zero(t *testing.T) {
	var s Spec[string]

	assert.False(t, s.isSet())

	_, ok := s.normalize().get(branchYes)
	assert.False(t, ok)
}

func TestSpec_ScalarNormalizesToBothBranches(t *testing.T) {
	s := Scalar("hello").normalize()

	y, ok := s.get(branchYes)
	require.True(t, ok)
	n, ok2 := s.get(branchNo)
	require.True(t, ok2)

	assert.Equal(t, "hello", y)
	assert.Equal(t, "hello", n)
}

func TestSpec_ForBranches(t *testing.T) {
	s := ForBranches("a", "b").normalize()

	y, _ := s.get(branchYes)
	n, _ := s.get(branchNo)
	assert.Equal(t, "a", y)
	assert.Equal(t, "b", n)
}

func TestSpec_PartialBranch(t *testing.T) {
	s := OnYes("only yes").normalize()

	_, ok := s.get(branchNo)
	assert.False(t, ok)

	y, ok := s.get(branchYes)
	assert.True(t, ok)
	assert.Equal(t, "only yes", y)
}

func TestSpec_UnmarshalYAML_Scalar(t *testing.T) {
	var s Spec[string]
	require.NoError(t, yaml.Unmarshal([]byte(`"Hi there"`), &s))

	v, ok := s.normalize().get(branchNo)
	assert.True(t, ok)
	assert.Equal(t, "Hi there", v)
}

func TestSpec_UnmarshalYAML_BranchPair(t *testing.T) {
	var s Spec[string]
	require.NoError(t, yaml.Unmarshal([]byte("yes: Great!\nno: Too bad"), &s))

	s = s.normalize()
	y, _ := s.get(branchYes)
	n, _ := s.get(branchNo)
	assert.Equal(t, "Great!", y)
	assert.Equal(t, "Too bad", n)
}

func TestSpec_UnmarshalYAML_PartialPair(t *testing.T) {
	var s Spec[string]
	require.NoError(t, yaml.Unmarshal([]byte("yes: Great!"), &s))

	_, ok := s.normalize().get(branchNo)
	assert.False(t, ok)
}

func TestRule_UnmarshalYAML(t *testing.T) {
	src := `
condition: 1
kind: yes_no
text:
  yes: Great!
  no: Too bad
new_state:
  yes: 2
  no: 3
private: true
`
	var r Rule
	require.NoError(t, yaml.Unmarshal([]byte(src), &r))

	assert.Equal(t, 1, r.Condition)
	assert.Equal(t, YesNo, r.Kind)

	r = r.normalize()
	text, _ := r.Text.get(branchYes)
	assert.Equal(t, "Great!", text)

	next, _ := r.NewState.get(branchNo)
	assert.Equal(t, 3, next)

	private, _ := r.Private.get(branchNo)
	assert.True(t, private)
}

func TestRule_Normalize_DefaultsKind(t *testing.T) {
	r := Rule{Condition: 1, Text: Scalar("Hi")}.normalize()

	assert.Equal(t, Simple, r.Kind)
}

func TestDisablePolicy_UnmarshalYAML_Bool(t *testing.T) {
	var p DisablePolicy
	require.NoError(t, yaml.Unmarshal([]byte(`true`), &p))
	assert.True(t, p.always)

	p = DisablePolicy{}
	require.NoError(t, yaml.Unmarshal([]byte(`false`), &p))
	assert.False(t, p.always)
	assert.Empty(t, p.users)
}

func TestDisablePolicy_UnmarshalYAML_SingleUser(t *testing.T) {
	var p DisablePolicy
	require.NoError(t, yaml.Unmarshal([]byte(`admin`), &p))

	_, ok := p.users["admin"]
	assert.True(t, ok)
}

func TestDisablePolicy_UnmarshalYAML_UserList(t *testing.T) {
	var p DisablePolicy
	require.NoError(t, yaml.Unmarshal([]byte(`[admin, mod]`), &p))

	assert.Len(t, p.users, 2)
}
