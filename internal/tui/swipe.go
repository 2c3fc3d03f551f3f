// Package tui implements the interactive swipe view: a bubbletea program
// that renders the head of the discovery queue as a card and translates
// keystrokes into like/skip/refresh actions on the engine.
//
// The engine stays the single source of truth; the model re-reads a
// snapshot after every settled action instead of tracking its own copy of
// the queue.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/sparkle/internal/discovery"
	"github.com/mkravets/sparkle/internal/models"
)

// noticeFadeDelay is how long a like/skip result stays in the status area.
const noticeFadeDelay = 3 * time.Second

// feedLoadedMsg is sent when the initial load or a refresh settles.
type feedLoadedMsg struct {
	err error
}

// likeDoneMsg is sent when a like call settles.
type likeDoneMsg struct {
	name   string
	result *models.LikeResult
	err    error
}

// skipDoneMsg is sent when a skip settles.
type skipDoneMsg struct {
	name string
	err  error
}

// noticeFadeMsg clears the transient notice.
type noticeFadeMsg struct{}

// Model is the bubbletea model for the swipe view.
type Model struct {
	ctx    context.Context
	engine *discovery.Engine

	keys    keyMap
	spin    spinner.Model
	width   int
	busy    bool
	loading bool

	notice      string
	noticeMatch bool
	errNotice   string
	quitting    bool
}

// NewModel builds the swipe view around an existing engine. ctx bounds
// every backend call made from the view.
func NewModel(ctx context.Context, engine *discovery.Engine) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		engine:  engine,
		keys:    defaultKeyMap(),
		spin:    sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd())
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return feedLoadedMsg{err: m.engine.Refresh(m.ctx)}
	}
}

func (m Model) likeCmd(c models.Candidate) tea.Cmd {
	return func() tea.Msg {
		res, err := m.engine.Like(m.ctx, c.UserID)
		return likeDoneMsg{name: c.DisplayName, result: res, err: err}
	}
}

func (m Model) skipCmd(c models.Candidate) tea.Cmd {
	return func() tea.Msg {
		return skipDoneMsg{name: c.DisplayName, err: m.engine.Skip(m.ctx, c.UserID)}
	}
}

func fadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errNotice = m.engine.Snapshot().Err
		}
		return m, nil

	case likeDoneMsg:
		m.busy = false
		if msg.err != nil {
			// A pending like means the keypress raced itself; drop it
			// silently rather than alarming the user.
			if !errors.Is(msg.err, discovery.ErrLikePending) && !errors.Is(msg.err, discovery.ErrNotInQueue) {
				m.errNotice = m.engine.Snapshot().Err
			}
			return m, nil
		}
		m.errNotice = ""
		if msg.result.Mutual {
			m.notice = fmt.Sprintf("It's a match with %s!", msg.name)
			m.noticeMatch = true
		} else {
			m.notice = fmt.Sprintf("Liked %s", msg.name)
			m.noticeMatch = false
		}
		return m, fadeCmd()

	case skipDoneMsg:
		m.busy = false
		if msg.err != nil && !errors.Is(msg.err, discovery.ErrLikePending) && !errors.Is(msg.err, discovery.ErrNotInQueue) {
			m.errNotice = m.engine.Snapshot().Err
			return m, nil
		}
		m.notice = fmt.Sprintf("Skipped %s", msg.name)
		m.noticeMatch = false
		return m, fadeCmd()

	case noticeFadeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.errNotice = ""
			return m, m.refreshCmd()

		case key.Matches(msg, m.keys.Like):
			if m.busy || m.loading {
				return m, nil
			}
			c, ok := m.engine.Current()
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, m.likeCmd(c)

		case key.Matches(msg, m.keys.Skip):
			if m.busy || m.loading {
				return m, nil
			}
			c, ok := m.engine.Current()
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, m.skipCmd(c)
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.loading {
		b.WriteString(m.spin.View() + " loading feed...\n")
		return b.String()
	}

	state := m.engine.Snapshot()

	if c, ok := m.engine.Current(); ok {
		b.WriteString(m.renderCard(c))
	} else if state.LoadingMore {
		b.WriteString(m.spin.View() + " fetching more profiles...\n")
	} else {
		b.WriteString(cardStyle.Render("No more profiles.\nCome back later or press r to refresh."))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(m.spin.View() + " sending...\n")
	}
	if m.notice != "" {
		style := noticeStyle
		if m.noticeMatch {
			style = matchStyle
		}
		b.WriteString(style.Render(m.notice) + "\n")
	}
	if m.errNotice != "" {
		b.WriteString(errStyle.Render(m.errNotice) + "\n")
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("%d in queue · page %d", len(state.Queue), state.Page)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("l/→ like · s/← skip · r refresh · q back"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(c models.Candidate) string {
	lines := []string{nameStyle.Render(c.DisplayName)}
	if c.Gender != nil {
		lines = append(lines, fieldLabelStyle.Render(strings.ReplaceAll(string(*c.Gender), "_", " ")))
	}
	if c.FavoriteJoke != nil && *c.FavoriteJoke != "" {
		lines = append(lines, "", jokeStyle.Render(*c.FavoriteJoke))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}
