package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jask/jaskchat/internal/chat"
)

func TestBuildMessagesRoleMapping(t *testing.T) {
	history := []chat.TransportMessage{
		{Content: "hi", Sender: chat.SenderUser},
		{Content: "hello", Sender: chat.SenderAssistant},
	}
	newMsg := chat.TransportMessage{Content: "how are you?", Sender: chat.SenderUser}

	msgs := buildMessages(history, newMsg)
	if len(msgs) != 4 {
		t.Fatalf("buildMessages len = %d, want 4 (system + 2 history + new)", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != systemPrompt {
		t.Fatalf("first message = %+v, want system prompt", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "hi" {
		t.Fatalf("history user message = %+v", msgs[1])
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant || msgs[2].Content != "hello" {
		t.Fatalf("history assistant message = %+v", msgs[2])
	}
	if msgs[3].Role != openai.ChatMessageRoleUser || msgs[3].Content != "how are you?" {
		t.Fatalf("final message = %+v, want new user turn", msgs[3])
	}
}

func TestBuildMessagesEmptyHistory(t *testing.T) {
	msgs := buildMessages(nil, chat.TransportMessage{Content: "hi", Sender: chat.SenderUser})
	if len(msgs) != 2 {
		t.Fatalf("buildMessages len = %d, want 2", len(msgs))
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "hi" {
		t.Fatalf("final message = %+v", msgs[1])
	}
}

func TestNewOpenAIDefaults(t *testing.T) {
	g := NewOpenAI("key", "", 0)
	if g.model != defaultModel {
		t.Fatalf("model = %q, want %q", g.model, defaultModel)
	}
	if g.maxTokens != defaultMaxTokens {
		t.Fatalf("maxTokens = %d, want %d", g.maxTokens, defaultMaxTokens)
	}
}
