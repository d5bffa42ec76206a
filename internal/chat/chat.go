// Package chat holds the in-memory conversation model: messages, the
// conversation store with its single pending slot, and id allocation.
// Nothing here is persisted; the session lives and dies with the process.
package chat

// Sender identifies the author of a message.
type Sender int

const (
	SenderUser Sender = iota
	SenderAssistant
)

func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "Assistant"
	default:
		return "Unknown"
	}
}

// Message is immutable once created. Timestamp is seconds since epoch,
// assigned at submission time for user messages and at arrival time for
// assistant messages.
type Message struct {
	Content   string
	Sender    Sender
	Timestamp int64
}

func NewMessage(content string, sender Sender, timestamp int64) Message {
	return Message{Content: content, Sender: sender, Timestamp: timestamp}
}

// TransportMessage is the reduced projection of a Message sent to the
// assistant gateway: content and sender only, no timestamps or anything
// derived for rendering.
type TransportMessage struct {
	Content string
	Sender  Sender
}

// Transport projects the message for the gateway boundary.
func (m Message) Transport() TransportMessage {
	return TransportMessage{Content: m.Content, Sender: m.Sender}
}

// Conversation is an append-only message sequence plus the unsent draft
// being typed on its screen. Messages never alternate by rule: submitting
// twice before a reply arrives legally appends consecutive user messages.
type Conversation struct {
	Messages []Message
	Draft    string
}

// Transport snapshots the current message history for the gateway.
func (c *Conversation) Transport() []TransportMessage {
	out := make([]TransportMessage, len(c.Messages))
	for i, m := range c.Messages {
		out[i] = m.Transport()
	}
	return out
}

// LastMessage returns the newest message, if any.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
