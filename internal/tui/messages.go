package tui

import (
	"github.com/jask/jaskchat/internal/chat"
	"github.com/jask/jaskchat/internal/llm"
)

// completionMsg is the single result of one dispatched gateway call. target
// is the conversation identity bound at dispatch time; err and resp are
// mutually exclusive. Results are applied in arrival order, which for
// concurrent submissions need not match issue order.
type completionMsg struct {
	target chat.Ref
	resp   llm.Response
	err    error
}
