package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

func TestEngine_SimpleRule(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi"), NewState: Scalar[State](2)},
	}, DisablePolicy{})

	res := e.Evaluate(1, "anything at all", nil)

	require.Len(t, res.Messages, 1)
	assert.Equal(t, chat.Message{UserName: "Botty", Text: "Hi"}, res.Messages[0])
	assert.Equal(t, 2, res.Next)
	assert.False(t, res.Private)
}

func TestEngine_NoMatchingRule(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi")},
	}, DisablePolicy{})

	res := e.Evaluate(7, "hello", nil)

	assert.Empty(t, res.Messages)
	assert.Equal(t, 7, res.Next)
}

func TestEngine_FirstMatchingRuleWins(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("first")},
		{Condition: 1, Kind: Simple, Text: Scalar("second")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "hello", nil)

	require.Len(t, res.Messages, 1)
	assert.Equal(t, "first", res.Messages[0].Text)
}

func TestEngine_SimpleRule_KeepsStateWithoutNewState(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: "greet", Kind: Simple, Text: Scalar("Hi")},
	}, DisablePolicy{})

	res := e.Evaluate("greet", "hello", nil)

	assert.Equal(t, "greet", res.Next)
}

func TestEngine_YesNo_YesBranch(t *testing.T) {
	e := New("Botty", []Rule{
		{
			Condition: 1,
			Kind:      YesNo,
			Text:      ForBranches("Great!", "Too bad"),
			NewState:  ForBranches[State](2, 3),
		},
	}, DisablePolicy{})

	res := e.Evaluate(1, "Yes please", nil)

	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Great!", res.Messages[0].Text)
	assert.Equal(t, 2, res.Next)
}

func TestEngine_YesNo_ExactShorthand(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: ForBranches("Great!", "Too bad")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "y", nil)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Great!", res.Messages[0].Text)

	res = e.Evaluate(1, "N", nil)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Too bad", res.Messages[0].Text)
}

func TestEngine_YesNo_DualTrigger(t *testing.T) {
	// A message carrying both signals fires both branches in yes, no order.
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: ForBranches("Great!", "Too bad")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "yes but no", nil)

	require.Len(t, res.Messages, 2)
	assert.Equal(t, "Great!", res.Messages[0].Text)
	assert.Equal(t, "Too bad", res.Messages[1].Text)
}

func TestEngine_YesNo_NeitherSignal(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: ForBranches("Great!", "Too bad")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "maybe", nil)

	assert.Empty(t, res.Messages)
	assert.Equal(t, 1, res.Next)
}

func TestEngine_YesNo_ScalarTextAppliesToBothBranches(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: Scalar("Noted.")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "no", nil)

	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Noted.", res.Messages[0].Text)
}

func TestEngine_YesNo_MissingBranchIsNoOp(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: OnYes("Great!")},
	}, DisablePolicy{})

	res := e.Evaluate(1, "no", nil)

	assert.Empty(t, res.Messages)
	assert.Equal(t, 1, res.Next)
}

func TestEngine_SideEffect(t *testing.T) {
	fired := 0
	e := New("Botty", []Rule{
		{
			Condition: 1,
			Kind:      Simple,
			Text:      Scalar("Hi"),
			Effect:    Scalar[Effect](func() { fired++ }),
		},
	}, DisablePolicy{})

	e.Evaluate(1, "hello", nil)

	assert.Equal(t, 1, fired)
}

func TestEngine_YesNo_BranchSideEffects(t *testing.T) {
	var log []string
	e := New("Botty", []Rule{
		{
			Condition: 1,
			Kind:      YesNo,
			Text:      ForBranches("Great!", "Too bad"),
			Effect: ForBranches[Effect](
				func() { log = append(log, "yes") },
				func() { log = append(log, "no") },
			),
		},
	}, DisablePolicy{})

	e.Evaluate(1, "yes and also no", nil)

	assert.Equal(t, []string{"yes", "no"}, log)
}

func TestEngine_Private(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: YesNo, Text: ForBranches("ok", "ok"), Private: OnYes(true)},
	}, DisablePolicy{})

	assert.True(t, e.Evaluate(1, "yes", nil).Private)
	assert.False(t, e.Evaluate(1, "no", nil).Private)
}

func TestEngine_DisableAlways(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi")},
	}, DisableAlways())

	res := e.Evaluate(1, "hello", nil)

	assert.Empty(t, res.Messages)
	assert.Equal(t, Disabled, res.Next)
}

func TestEngine_DisableOnUsers(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi")},
	}, DisableOnUsers("admin"))

	prior := []chat.Message{
		chat.New("alice", "hello"),
		chat.New("admin", "I'll take it from here"),
	}

	// The current message is from someone else entirely; a prior message
	// from a listed user is enough.
	res := e.Evaluate(1, "hello from bob", prior)

	assert.Empty(t, res.Messages)
	assert.Equal(t, Disabled, res.Next)
}

func TestEngine_DisableOnUsers_NoListedUser(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi")},
	}, DisableOnUsers("admin"))

	res := e.Evaluate(1, "hello", []chat.Message{chat.New("alice", "hi")})

	require.Len(t, res.Messages, 1)
	assert.Equal(t, 1, res.Next)
}

func TestEngine_DisabledIsTerminal(t *testing.T) {
	e := New("Botty", []Rule{
		{Condition: 1, Kind: Simple, Text: Scalar("Hi"), NewState: Scalar[State](2)},
	}, DisableAlways())

	res := e.Evaluate(1, "hello", nil)
	require.Equal(t, Disabled, res.Next)

	// Every subsequent call is a no-op regardless of input.
	for _, input := range []string{"hello", "yes", ""} {
		res = e.Evaluate(res.Next, input, nil)
		assert.Empty(t, res.Messages)
		assert.Equal(t, Disabled, res.Next)
	}
}
