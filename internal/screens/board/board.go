package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/logging"
	"github.com/abhisek/conceptsort/internal/notify"
	"github.com/abhisek/conceptsort/internal/quiz"
	"github.com/abhisek/conceptsort/internal/router"
	"github.com/abhisek/conceptsort/internal/screen"
	"github.com/abhisek/conceptsort/internal/screens/results"
	"github.com/abhisek/conceptsort/internal/sorting"
	"github.com/abhisek/conceptsort/internal/ui/layout"
	"github.com/abhisek/conceptsort/internal/ui/theme"
)

// Config wires a board to its sources.
type Config struct {
	Sources []activity.Source

	// LoadTimeout bounds each load attempt. Zero waits indefinitely.
	LoadTimeout time.Duration

	// SessionOptions are passed to quiz.New.
	SessionOptions []quiz.Option

	// Now replaces time.Now for toasts.
	Now func() time.Time

	// Context is the parent of every load and carries the logger.
	Context context.Context
}

// BoardScreen plays a quiz: it loads the questions, then lets the learner
// move concepts between zones with the keyboard.
type BoardScreen struct {
	cfg     Config
	session *quiz.Session
	ticket  quiz.LoadTicket
	ctx     context.Context
	cancel  context.CancelFunc
	log     zerolog.Logger

	spinner spinner.Model
	keys    keyMap
	toasts  notify.Queue

	// Cursor position: a column and a row inside it.
	col int
	row int

	// held is the id of the picked-up item; target is where it will drop.
	held   string
	target sorting.Zone

	// checked is set by Check and cleared by the next placement.
	checked bool
}

var (
	_ screen.Screen          = (*BoardScreen)(nil)
	_ screen.KeyHintProvider = (*BoardScreen)(nil)
	_ screen.StatusProvider  = (*BoardScreen)(nil)
	_ screen.EscapeCapturer  = (*BoardScreen)(nil)
	_ screen.Disposer        = (*BoardScreen)(nil)
)

// New creates a board that loads cfg.Sources when shown.
func New(cfg Config) *BoardScreen {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	ctx, cancel := context.WithCancel(cfg.Context)
	return &BoardScreen{
		cfg:     cfg,
		session: quiz.New(cfg.SessionOptions...),
		ctx:     ctx,
		cancel:  cancel,
		log:     *logging.FromContext(ctx),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
		keys:    defaultKeys(),
	}
}

// Session exposes the underlying quiz session.
func (b *BoardScreen) Session() *quiz.Session { return b.session }

func (b *BoardScreen) Init() tea.Cmd {
	return tea.Batch(b.startLoad(b.session.BeginLoad), tickCmd())
}

func (b *BoardScreen) Title() string {
	if a, ok := b.session.Current(); ok {
		return a.Title
	}
	return "Quiz"
}

func (b *BoardScreen) Status() string {
	if b.session.Phase() != quiz.PhaseInProgress {
		return ""
	}
	return fmt.Sprintf("Question %d/%d", b.session.Index()+1, b.session.Len())
}

func (b *BoardScreen) CapturesEscape() bool { return b.held != "" }

// Dispose closes the session so an in-flight load is ignored.
func (b *BoardScreen) Dispose() {
	b.cancel()
	b.session.Close()
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	switch b.session.Phase() {
	case quiz.PhaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case quiz.PhaseLoadFailed:
		return []layout.KeyHint{{Key: "R", Description: "Retry"}, {Key: "Esc", Description: "Back"}}
	}
	if b.held != "" {
		return []layout.KeyHint{
			{Key: "←→ 1-3", Description: "Target"},
			{Key: "Enter", Description: "Drop"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	next := "Next"
	if b.session.IsLastQuestion() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Space", Description: "Pick up"},
		{Key: "1-3", Description: "Send"},
		{Key: "C", Description: "Check"},
		{Key: "R", Description: "Reset"},
		{Key: "N", Description: next},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return b.handleLoaded(msg)

	case spinner.TickMsg:
		if b.session.Phase() != quiz.PhaseLoading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case clockTickMsg:
		if b.session.Phase() == quiz.PhaseFinished {
			return b, nil
		}
		return b, tickCmd()

	case tea.KeyPressMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

// startLoad begins a load attempt with begin and returns the command that
// performs it.
func (b *BoardScreen) startLoad(begin func() (quiz.LoadTicket, error)) tea.Cmd {
	ticket, err := begin()
	if err != nil {
		b.log.Warn().Err(err).Msg("load not started")
		return nil
	}
	b.ticket = ticket
	return tea.Batch(b.spinner.Tick, b.loadCmd(ticket))
}

func (b *BoardScreen) loadCmd(ticket quiz.LoadTicket) tea.Cmd {
	ctx, sources, timeout := b.ctx, b.cfg.Sources, b.cfg.LoadTimeout
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		acts, err := activity.LoadAll(ctx, sources)
		return loadedMsg{Ticket: ticket, Activities: acts, Err: err}
	}
}

func (b *BoardScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if !b.session.CompleteLoad(msg.Ticket, msg.Activities, msg.Err) {
		return b, nil
	}
	b.resetCursor()
	return b, nil
}

func (b *BoardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch b.session.Phase() {
	case quiz.PhaseLoadFailed:
		if key.Matches(msg, b.keys.Reset) {
			return b, b.startLoad(b.session.Retry)
		}
		return b, nil
	case quiz.PhaseInProgress:
	default:
		return b, nil
	}

	if b.held != "" {
		return b.handleHeldKey(msg)
	}

	round := b.session.Round()
	switch {
	case key.Matches(msg, b.keys.Left):
		b.moveColumn(-1)
	case key.Matches(msg, b.keys.Right):
		b.moveColumn(1)
	case key.Matches(msg, b.keys.Up):
		b.row = max(b.row-1, 0)
	case key.Matches(msg, b.keys.Down):
		b.row = min(b.row+1, max(len(b.columnItems())-1, 0))

	case key.Matches(msg, b.keys.Pick):
		if id, ok := b.cursorItem(); ok {
			b.held = id
			b.target = sorting.Zones[b.col]
		}

	case key.Matches(msg, b.keys.ToGroupA):
		b.sendCursorItem(sorting.ZoneGroupA)
	case key.Matches(msg, b.keys.ToGroupB):
		b.sendCursorItem(sorting.ZoneGroupB)
	case key.Matches(msg, b.keys.ToUnsorted):
		b.sendCursorItem(sorting.ZoneUnsorted)

	case key.Matches(msg, b.keys.Check):
		b.checked = true
		b.toasts.Push(notify.ForScore(round.Correct(), round.Total()), b.cfg.Now())

	case key.Matches(msg, b.keys.Reset):
		round.Reset()
		b.checked = false
		b.toasts.Clear()
		b.resetCursor()

	case key.Matches(msg, b.keys.Next):
		return b.advance()
	}
	return b, nil
}

func (b *BoardScreen) handleHeldKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Left):
		b.target = sorting.Zones[(indexOf(b.target)+len(sorting.Zones)-1)%len(sorting.Zones)]
	case key.Matches(msg, b.keys.Right):
		b.target = sorting.Zones[(indexOf(b.target)+1)%len(sorting.Zones)]
	case key.Matches(msg, b.keys.ToGroupA):
		b.target = sorting.ZoneGroupA
	case key.Matches(msg, b.keys.ToGroupB):
		b.target = sorting.ZoneGroupB
	case key.Matches(msg, b.keys.ToUnsorted):
		b.target = sorting.ZoneUnsorted
	case key.Matches(msg, b.keys.Drop):
		b.drop(sorting.DragEnd{ItemID: b.held, Over: string(b.target)})
	case key.Matches(msg, b.keys.Cancel):
		b.drop(sorting.DragEnd{ItemID: b.held})
	}
	return b, nil
}

// drop ends the current drag. A drag without a target leaves the board
// untouched.
func (b *BoardScreen) drop(e sorting.DragEnd) {
	b.held = ""
	if !b.session.Round().HandleDragEnd(e) {
		return
	}
	b.checked = false
	b.followItem(e.ItemID)
}

func (b *BoardScreen) sendCursorItem(z sorting.Zone) {
	id, ok := b.cursorItem()
	if !ok {
		return
	}
	if b.session.Round().Place(id, z) {
		b.checked = false
		b.clampRow()
	}
}

func (b *BoardScreen) advance() (screen.Screen, tea.Cmd) {
	err := b.session.Advance()
	switch {
	case errors.Is(err, quiz.ErrUnsortedItems):
		round := b.session.Round()
		b.toasts.Push(notify.Notice{
			Level: notify.LevelError,
			Text:  fmt.Sprintf("Sort every concept first (%d left).", round.Unsorted()),
		}, b.cfg.Now())
		return b, nil
	case err != nil:
		b.log.Error().Err(err).Msg("advance rejected")
		return b, nil
	}

	if b.session.Phase() == quiz.PhaseFinished {
		summary := b.session.Summary()
		return b, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(summary)}
		}
	}
	b.checked = false
	b.toasts.Clear()
	b.resetCursor()
	return b, nil
}

func (b *BoardScreen) resetCursor() {
	b.col = indexOf(sorting.ZoneUnsorted)
	b.row = 0
	b.held = ""
}

func (b *BoardScreen) moveColumn(delta int) {
	b.col = (b.col + delta + len(sorting.Zones)) % len(sorting.Zones)
	b.clampRow()
}

func (b *BoardScreen) clampRow() {
	b.row = min(b.row, max(len(b.columnItems())-1, 0))
}

// followItem moves the cursor onto id, wherever it now sits.
func (b *BoardScreen) followItem(id string) {
	z, ok := b.session.Round().ZoneOf(id)
	if !ok {
		return
	}
	b.col = indexOf(z)
	items := b.session.Round().Zones().In(z)
	for i, it := range items {
		if it == id {
			b.row = i
			return
		}
	}
}

func (b *BoardScreen) columnItems() []string {
	return b.session.Round().Zones().In(sorting.Zones[b.col])
}

func (b *BoardScreen) cursorItem() (string, bool) {
	items := b.columnItems()
	if b.row < 0 || b.row >= len(items) {
		return "", false
	}
	return items[b.row], true
}

func indexOf(z sorting.Zone) int {
	for i, c := range sorting.Zones {
		if c == z {
			return i
		}
	}
	return 0
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
