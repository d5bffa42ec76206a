package llm

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jask/jaskchat/internal/chat"
)

const systemPrompt = "You are a helpful AI assistant. Be concise and clear in your responses."

const (
	defaultModel     = openai.GPT4
	defaultMaxTokens = 1024
)

// OpenAI is the chat-completion backed Gateway.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAI(apiKey, model string, maxTokens int) *OpenAI {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model, maxTokens: maxTokens}
}

func (g *OpenAI) Complete(ctx context.Context, history []chat.TransportMessage, newMessage chat.TransportMessage) (Response, error) {
	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages:  buildMessages(history, newMessage),
	}

	log.Debug().Str("model", g.model).Int("history", len(history)).Msg("completion request")
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Response{}, errors.Wrap(err, "chat completion")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Response{}, errors.New("no content in completion response")
	}

	return Response{
		Content:   resp.Choices[0].Message.Content,
		Timestamp: time.Now().Unix(),
	}, nil
}

// buildMessages maps the transport history onto completion roles: a leading
// system prompt, the prior messages with their senders, and the new message
// as the final user turn.
func buildMessages(history []chat.TransportMessage, newMessage chat.TransportMessage) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Sender == chat.SenderAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: newMessage.Content,
	})
	return msgs
}
