// Package bot implements a rule-driven conversational bot as a pure state
// machine. The engine holds immutable configuration (display name, rules,
// disable policy); conversation state is an explicit value threaded
// through Evaluate calls by the caller, which must apply the returned
// state before evaluating again.
package bot

import (
	"strings"

	"github.com/telepathic-chat/chatkit/pkg/chat"
)

// State is the opaque value gating which rule is eligible. Any comparable
// value works; rules match with plain equality. A nil State is the
// terminal disabled state: once reached, Evaluate is a permanent no-op.
type State any

// Disabled is the terminal state. It is never left once entered.
var Disabled State

// Result is the outcome of one Evaluate call.
type Result struct {
	// Messages are the bot's outgoing messages, in emission order.
	Messages []chat.Message
	// Next is the state the caller must carry into the next call.
	Next State
	// Private reports whether the exchange should be withheld from the
	// transport. It is true when any fired branch was marked private.
	Private bool
}

// Engine evaluates incoming messages against a fixed rule set. Evaluate
// is pure and synchronous apart from invoking rule side effects.
type Engine struct {
	displayName string
	rules       []Rule
	policy      DisablePolicy
}

// New creates an engine. Rules keep their configured order; their Spec
// fields are normalized here so evaluation never coalesces scalars again.
func New(displayName string, rules []Rule, policy DisablePolicy) *Engine {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = r.normalize()
	}
	return &Engine{
		displayName: displayName,
		rules:       normalized,
		policy:      policy,
	}
}

// DisplayName returns the name the bot signs its messages with.
func (e *Engine) DisplayName() string {
	return e.displayName
}

// Evaluate runs one incoming message through the engine.
//
// The disable policy is checked first on every call: an always policy
// disables immediately, and a user-list policy disables once any prior
// message was sent by a listed user. A disabled bot emits nothing and
// stays disabled forever.
//
// Otherwise the first rule whose condition equals the current state is
// selected. Simple rules emit their text unconditionally. Yes/no rules
// test the lower-cased message independently for a yes signal (contains
// "yes" or equals "y") and a no signal (contains "no" or equals "n");
// each present signal fires its own branch, so a message carrying both
// signals fires both.
func (e *Engine) Evaluate(state State, incoming string, prior []chat.Message) Result {
	if state == Disabled {
		return Result{Next: Disabled}
	}

	if e.policy.always {
		return Result{Next: Disabled}
	}
	if len(e.policy.users) > 0 {
		for _, m := range prior {
			if _, ok := e.policy.users[m.UserName]; ok {
				return Result{Next: Disabled}
			}
		}
	}

	var match *Rule
	for i := range e.rules {
		if e.rules[i].Condition == state {
			match = &e.rules[i]
			break
		}
	}
	if match == nil {
		return Result{Next: state}
	}

	res := Result{Next: state}
	switch match.Kind {
	case YesNo:
		lower := strings.ToLower(incoming)
		if strings.Contains(lower, "yes") || lower == "y" {
			e.fire(match, branchYes, &res)
		}
		if strings.Contains(lower, "no") || lower == "n" {
			e.fire(match, branchNo, &res)
		}
	default:
		e.fire(match, branchYes, &res)
	}
	return res
}

// fire applies one branch of a matched rule to the result. Absent fields
// are no-ops, never errors.
func (e *Engine) fire(r *Rule, b branch, res *Result) {
	if text, ok := r.Text.get(b); ok {
		res.Messages = append(res.Messages, chat.Message{
			UserName: e.displayName,
			Text:     text,
		})
	}
	if next, ok := r.NewState.get(b); ok && next != nil {
		res.Next = next
	}
	if private, ok := r.Private.get(b); ok && private {
		res.Private = true
	}
	if effect, ok := r.Effect.get(b); ok && effect != nil {
		effect()
	}
}
