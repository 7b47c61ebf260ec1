// Package chat defines the message value type and the append-only
// transcript container shared by the bot engine, the session, and the
// transport client.
package chat

// Message is a single chat message. It is a value type that copies
// cheaply and is immutable once created.
type Message struct {
	UserName string
	Text     string
}

// New creates a message from the given user.
func New(userName, text string) Message {
	return Message{UserName: userName, Text: text}
}

// Transcript is an append-only container of messages. The zero value is
// ready to use. Transcript is not safe for concurrent use; callers must
// synchronize externally.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a Transcript pre-populated with the given messages.
func NewTranscript(msgs ...Message) *Transcript {
	return &Transcript{messages: msgs}
}

// Append adds one or more messages to the transcript.
func (t *Transcript) Append(msgs ...Message) {
	t.messages = append(t.messages, msgs...)
}

// Len returns the number of messages in the transcript.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// At returns the message at the given index.
// It panics if the index is out of range.
func (t *Transcript) At(index int) Message {
	return t.messages[index]
}

// Last returns the most recent message and true, or a zero Message and
// false if the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Messages returns a copy of all messages in the transcript.
func (t *Transcript) Messages() []Message {
	cp := make([]Message, len(t.messages))
	copy(cp, t.messages)
	return cp
}

// ByUser returns all messages sent by the given user.
func (t *Transcript) ByUser(userName string) []Message {
	var out []Message
	for _, m := range t.messages {
		if m.UserName == userName {
			out = append(out, m)
		}
	}
	return out
}
