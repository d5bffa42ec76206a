package tui

import (
	"strings"
	"testing"

	"github.com/jask/jaskchat/internal/chat"
	"github.com/jask/jaskchat/internal/llm"
)

func TestListViewEmptyState(t *testing.T) {
	a, _ := newTestApp()
	out := a.View()
	if !strings.Contains(out, "No conversations yet") {
		t.Fatalf("empty list view missing placeholder:\n%s", out)
	}
}

func TestListViewShowsChatAndPreview(t *testing.T) {
	a, gw := newTestApp()
	gw.resp = llm.Response{Content: "short reply", Timestamp: 1}

	press(t, a, "n")
	cmd := submitText(t, a, "hello there")
	apply(t, a, cmd())
	press(t, a, "esc")

	out := a.View()
	if !strings.Contains(out, "Chat 0") {
		t.Fatalf("list view missing chat name:\n%s", out)
	}
	if !strings.Contains(out, "short reply") {
		t.Fatalf("list view missing last-message preview:\n%s", out)
	}
}

func TestPreviewTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("x", previewLimit+10)
	conv := &chat.Conversation{Messages: []chat.Message{chat.NewMessage(long, chat.SenderUser, 1)}}
	got := preview(conv)
	if got != strings.Repeat("x", previewLimit)+"..." {
		t.Fatalf("preview = %q, want %d runes plus ellipsis", got, previewLimit)
	}
}

func TestPreviewEmptyConversation(t *testing.T) {
	if got := preview(&chat.Conversation{}); got != "No messages yet" {
		t.Fatalf("preview = %q", got)
	}
}

func TestChatViewShowsDraftAndSenders(t *testing.T) {
	a, gw := newTestApp()
	gw.resp = llm.Response{Content: "fine, thanks", Timestamp: 60}

	press(t, a, "n")
	cmd := submitText(t, a, "how are you")
	apply(t, a, cmd())
	typeText(t, a, "dra")

	out := a.View()
	for _, want := range []string{"Chat 0", "You", "Assistant", "how are you", "fine, thanks", "> dra"} {
		if !strings.Contains(out, want) {
			t.Fatalf("chat view missing %q:\n%s", want, out)
		}
	}
}

func TestComposingViewTitle(t *testing.T) {
	a, _ := newTestApp()
	press(t, a, "n")
	if out := a.View(); !strings.Contains(out, "New Chat") {
		t.Fatalf("composing view missing title:\n%s", out)
	}
}
