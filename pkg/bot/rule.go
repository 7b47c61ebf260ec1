package bot

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind selects how a rule reacts to the incoming message.
type Kind string

const (
	// Simple rules always emit their text when their condition matches.
	Simple Kind = "simple"
	// YesNo rules test the incoming message for yes and no signals and
	// apply the corresponding branch of each field. Both branches fire
	// when the message carries both signals.
	YesNo Kind = "yes_no"
)

// Effect is a fire-and-forget side effect invoked when a rule branch
// fires. Its return value, if any, is never consumed.
type Effect func()

// Rule maps a bot state to a response. Rules are immutable configuration
// supplied once per bot definition; the engine normalizes their Spec
// fields at construction.
type Rule struct {
	// Condition is compared to the current state with plain equality.
	// It must be a comparable value.
	Condition State        `yaml:"condition"`
	Kind      Kind         `yaml:"kind"`
	Text      Spec[string] `yaml:"text"`
	NewState  Spec[State]  `yaml:"new_state"`
	Private   Spec[bool]   `yaml:"private"`
	Effect    Spec[Effect] `yaml:"-"`
}

// normalize returns the rule with every Spec field normalized and an
// empty kind defaulted to Simple.
func (r Rule) normalize() Rule {
	if r.Kind == "" {
		r.Kind = Simple
	}
	r.Text = r.Text.normalize()
	r.NewState = r.NewState.normalize()
	r.Private = r.Private.normalize()
	r.Effect = r.Effect.normalize()
	return r
}

// DisablePolicy determines when the bot transitions to the terminal
// disabled state. The zero value never disables.
type DisablePolicy struct {
	always bool
	users  map[string]struct{}
}

// DisableAlways silences the bot on the first evaluation.
func DisableAlways() DisablePolicy {
	return DisablePolicy{always: true}
}

// DisableOnUsers silences the bot permanently once any of the named users
// has spoken in the conversation.
func DisableOnUsers(names ...string) DisablePolicy {
	users := make(map[string]struct{}, len(names))
	for _, n := range names {
		users[n] = struct{}{}
	}
	return DisablePolicy{users: users}
}

// UnmarshalYAML accepts a boolean ("disable immediately"), a single user
// name, or a list of user names.
func (p *DisablePolicy) UnmarshalYAML(node *yaml.Node) error {
	var always bool
	if err := node.Decode(&always); err == nil {
		*p = DisablePolicy{always: always}
		return nil
	}

	var user string
	if err := node.Decode(&user); err == nil {
		*p = DisableOnUsers(user)
		return nil
	}

	var users []string
	if err := node.Decode(&users); err == nil {
		*p = DisableOnUsers(users...)
		return nil
	}

	return fmt.Errorf("bot: disable policy must be a bool, a user name, or a list of user names")
}
