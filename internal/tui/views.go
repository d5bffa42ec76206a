package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskchat/internal/chat"
)

const previewLimit = 50

func (a *App) View() string {
	switch a.screen.kind {
	case screenChat:
		return a.renderChat()
	default:
		return a.renderList()
	}
}

func (a *App) renderList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chats"))
	b.WriteString("\n\n")

	ids := a.store.IDs()
	if len(ids) == 0 {
		b.WriteString(chatPreviewStyle.Render("No conversations yet. Press n to start one."))
		b.WriteString("\n")
	}
	for i, id := range ids {
		conv := a.mustGet(chat.ExistingRef(id))
		name := fmt.Sprintf("Chat %d", id)
		marker := "  "
		nameStyle := chatNameStyle
		if i == a.cursor {
			marker = "> "
			nameStyle = selectedStyle
		}
		b.WriteString(marker + nameStyle.Render(name))
		b.WriteString("\n")
		b.WriteString("  " + chatPreviewStyle.Render(preview(conv)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n new chat • j/k move • enter open • q quit"))
	return b.String()
}

func (a *App) renderChat() string {
	conv := a.mustGet(a.screen.ref)

	var b strings.Builder
	title := "New Chat"
	if !a.screen.ref.Pending() {
		title = fmt.Sprintf("Chat %d", a.screen.ref.ID())
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, msg := range conv.Messages {
		b.WriteString(a.renderMessage(msg))
		b.WriteString("\n")
	}

	b.WriteString(inputStyle.Width(max(a.width-2, 20)).Render("> " + conv.Draft))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • esc back • ctrl+c quit"))
	return b.String()
}

func (a *App) renderMessage(msg chat.Message) string {
	header := userHeaderStyle.Render(msg.Sender.String())
	if msg.Sender == chat.SenderAssistant {
		header = assistantHeaderStyle.Render(msg.Sender.String())
	}
	when := timestampStyle.Render(time.Unix(msg.Timestamp, 0).Format("15:04"))

	body := msg.Content
	if msg.Sender == chat.SenderAssistant {
		body = a.renderMarkdown(msg.Content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header+" "+when, body)
}

// renderMarkdown renders assistant message bodies; on any renderer failure
// the raw content is shown instead.
func (a *App) renderMarkdown(content string) string {
	if a.md == nil {
		opts := []glamour.TermRendererOption{
			glamour.WithWordWrap(max(a.width-4, 20)),
		}
		if a.mdStyle == "" || a.mdStyle == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(a.mdStyle))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return content
		}
		a.md = r
	}
	out, err := a.md.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// preview shows the first 50 runes of a conversation's last message.
func preview(conv *chat.Conversation) string {
	last, ok := conv.LastMessage()
	if !ok {
		return "No messages yet"
	}
	r := []rune(last.Content)
	if len(r) > previewLimit {
		return string(r[:previewLimit]) + "..."
	}
	return last.Content
}
