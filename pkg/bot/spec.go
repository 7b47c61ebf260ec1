package bot

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// branch selects which side of a yes/no rule is being applied.
type branch int

const (
	branchYes branch = iota
	branchNo
)

// Spec is a rule field that is either a single scalar value (applies
// uniformly to both branches) or a per-branch pair (meaningful only on
// yes/no rules). The zero Spec is absent: applying it is a no-op rather
// than an error.
//
// In YAML a Spec is written either as a plain scalar or as a mapping with
// "yes" and/or "no" keys:
//
//	text: "Hi there"
//	text: {yes: "Great!", no: "Too bad"}
type Spec[T any] struct {
	scalar *T
	yes    *T
	no     *T
}

// Scalar returns a Spec holding a single value for both branches.
func Scalar[T any](v T) Spec[T] {
	return Spec[T]{scalar: &v}
}

// ForBranches returns a Spec with distinct yes and no values.
func ForBranches[T any](yes, no T) Spec[T] {
	return Spec[T]{yes: &yes, no: &no}
}

// OnYes returns a Spec that only applies on the yes branch.
func OnYes[T any](v T) Spec[T] {
	return Spec[T]{yes: &v}
}

// OnNo returns a Spec that only applies on the no branch.
func OnNo[T any](v T) Spec[T] {
	return Spec[T]{no: &v}
}

// isSet reports whether the Spec holds any value at all.
func (s Spec[T]) isSet() bool {
	return s.scalar != nil || s.yes != nil || s.no != nil
}

// normalize replicates a scalar into any empty branch slot, so that
// evaluation only ever consults the per-branch pair. This runs once per
// rule at engine construction.
func (s Spec[T]) normalize() Spec[T] {
	if s.scalar != nil {
		if s.yes == nil {
			s.yes = s.scalar
		}
		if s.no == nil {
			s.no = s.scalar
		}
	}
	return s
}

// get returns the value for the given branch and whether one is present.
// It must be called on a normalized Spec.
func (s Spec[T]) get(b branch) (T, bool) {
	var p *T
	switch b {
	case branchYes:
		p = s.yes
	case branchNo:
		p = s.no
	}
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// UnmarshalYAML decodes either a scalar node or a {yes, no} mapping.
func (s *Spec[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var pair struct {
			Yes *T `yaml:"yes"`
			No  *T `yaml:"no"`
		}
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("bot: decode branch pair: %w", err)
		}
		s.yes, s.no = pair.Yes, pair.No
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("bot: decode scalar: %w", err)
	}
	s.scalar = &v
	return nil
}
