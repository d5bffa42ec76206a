package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/jask/jaskchat/internal/chat"
	"github.com/jask/jaskchat/internal/llm"
)

// App is the session controller: it owns the conversation store and the
// navigation state, processes key input and completion results, and spawns
// gateway calls as commands. All state mutation happens inside Update, one
// message at a time; the only work running off the update loop is the
// gateway call itself, whose result re-enters Update as a completionMsg.
type App struct {
	ctx     context.Context
	gateway llm.Gateway
	store   *chat.Store

	screen screen
	cursor int // list selection, index into store.IDs()

	width, height int
	mdStyle       string
	md            *glamour.TermRenderer
}

type screenKind int

const (
	screenList screenKind = iota
	screenChat
)

// screen is the navigation state: the list of conversations, or a single
// conversation identified by ref (the pending slot while composing, a stored
// id while viewing).
type screen struct {
	kind screenKind
	ref  chat.Ref
}

func listScreen() screen { return screen{kind: screenList} }

func chatScreen(ref chat.Ref) screen { return screen{kind: screenChat, ref: ref} }

func New(ctx context.Context, gateway llm.Gateway, mdStyle string) *App {
	return &App{
		ctx:     ctx,
		gateway: gateway,
		store:   chat.NewStore(),
		screen:  listScreen(),
		mdStyle: mdStyle,
		width:   80,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.md = nil // rebuilt lazily at the new wrap width
	case tea.KeyMsg:
		if a.screen.kind == screenChat {
			return a.handleChatKey(m)
		}
		return a.handleListKey(m)
	case completionMsg:
		a.applyCompletion(m)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "n":
		// The pending slot is reused as-is; an abandoned draft is only
		// discarded by backing out of the composing screen.
		a.screen = chatScreen(chat.PendingRef())
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < a.store.Len()-1 {
			a.cursor++
		}
	case "enter":
		ids := a.store.IDs()
		if a.cursor < len(ids) {
			a.screen = chatScreen(chat.ExistingRef(ids[a.cursor]))
		}
	}
	return a, nil
}

func (a *App) handleChatKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	conv := a.mustGet(a.screen.ref)

	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		if a.screen.ref.Pending() {
			a.store.ResetPending()
		}
		a.screen = listScreen()
		return a, nil
	case "enter":
		return a, a.submit()
	}

	switch m.Type {
	case tea.KeyRunes:
		conv.Draft += string(m.Runes)
	case tea.KeySpace:
		conv.Draft += " "
	case tea.KeyBackspace:
		if r := []rune(conv.Draft); len(r) > 0 {
			conv.Draft = string(r[:len(r)-1])
		}
	}
	return a, nil
}

// submit runs the whole synchronous half of a submission: take the draft,
// append the user message optimistically, promote the pending conversation
// on its first message, and bind the in-flight request to the conversation's
// final identity. Only the gateway call itself happens asynchronously.
func (a *App) submit() tea.Cmd {
	conv := a.mustGet(a.screen.ref)
	if conv.Draft == "" {
		return nil
	}

	content := conv.Draft
	conv.Draft = ""
	userMsg := chat.NewMessage(content, chat.SenderUser, time.Now().Unix())

	// History is snapshotted before the optimistic append: the request
	// carries the conversation as it stood when the user hit enter.
	history := conv.Transport()
	a.mustAppend(a.screen.ref, userMsg)

	target := a.screen.ref
	if target.Pending() {
		id := a.store.Promote()
		target = chat.ExistingRef(id)
		a.screen = chatScreen(target)
	}

	return a.completeCmd(target, history, userMsg.Transport())
}

// completeCmd is the request dispatcher: one gateway call, one completionMsg,
// tagged with the routing target bound at dispatch time. The result lands in
// that conversation no matter where the user has navigated meanwhile.
func (a *App) completeCmd(target chat.Ref, history []chat.TransportMessage, newMsg chat.TransportMessage) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.gateway.Complete(a.ctx, history, newMsg)
		if err != nil {
			log.Debug().Stringer("target", target).Err(err).Msg("completion failed")
		} else {
			log.Debug().Stringer("target", target).Msg("completion received")
		}
		return completionMsg{target: target, resp: resp, err: err}
	}
}

func (a *App) applyCompletion(m completionMsg) {
	msg := chat.NewMessage(m.resp.Content, chat.SenderAssistant, m.resp.Timestamp)
	if m.err != nil {
		msg = chat.NewMessage("Error: "+m.err.Error(), chat.SenderAssistant, time.Now().Unix())
	}
	a.mustAppend(m.target, msg)
}

// mustGet resolves a ref that is valid by construction: screens only ever
// point at the pending slot or promoted ids, and completion targets are bound
// after promotion. A miss is a broken invariant, not a recoverable error.
func (a *App) mustGet(ref chat.Ref) *chat.Conversation {
	c, err := a.store.Get(ref)
	if err != nil {
		panic(err)
	}
	return c
}

func (a *App) mustAppend(ref chat.Ref, msg chat.Message) {
	if err := a.store.Append(ref, msg); err != nil {
		panic(err)
	}
}
