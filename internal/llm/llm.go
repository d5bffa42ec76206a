// Package llm is the assistant gateway: it turns a conversation history plus
// one new user message into a single generated reply. Callers own retries and
// cancellation policy (currently: none of either).
package llm

import (
	"context"

	"github.com/jask/jaskchat/internal/chat"
)

// Response is one generated assistant reply. Timestamp is assigned when the
// reply is received, seconds since epoch.
type Response struct {
	Content   string
	Timestamp int64
}

// Gateway performs exactly one completion call per invocation. Any failure —
// request construction, transport, or a response with no content — comes back
// as an error; the gateway never retries.
type Gateway interface {
	Complete(ctx context.Context, history []chat.TransportMessage, newMessage chat.TransportMessage) (Response, error)
}
