package home

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/conceptgen"
	"github.com/abhisek/conceptsort/internal/router"
	"github.com/abhisek/conceptsort/internal/screen"
	"github.com/abhisek/conceptsort/internal/screens/board"
	"github.com/abhisek/conceptsort/internal/ui/components"
	"github.com/abhisek/conceptsort/internal/ui/layout"
)

// maxTopics caps how many questions one topic line may request.
const maxTopics = 10

// Options configures the home screen.
type Options struct {
	// QuizTitle is shown when the questions come from a manifest.
	QuizTitle string

	// Board is the template for every quiz started from this screen. Its
	// Sources are the questions behind "Start quiz".
	Board board.Config

	// Generator enables "Generate from topic". Nil disables it.
	Generator        conceptgen.Generator
	ProviderName     string
	ConceptsPerGroup int
}

// HomeScreen is the entry menu.
type HomeScreen struct {
	opts       Options
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	// Topic entry mode.
	entering bool
	input    components.TextInput
	cancel   key.Binding
	submit   key.Binding
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.EscapeCapturer  = (*HomeScreen)(nil)
)

// New creates a HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts:   opts,
		cancel: key.NewBinding(key.WithKeys("esc")),
		submit: key.NewBinding(key.WithKeys("enter")),
	}

	h.menuLabels = []string{"START QUIZ", "GENERATE FROM TOPIC", "EXIT"}
	items := []components.MenuItem{
		{Label: h.menuLabels[0], Disabled: len(opts.Board.Sources) == 0, Action: func() tea.Cmd {
			return h.startQuiz(opts.Board.Sources)
		}},
		{Label: h.menuLabels[1], Disabled: opts.Generator == nil, Action: h.beginTopicEntry},
		{Label: h.menuLabels[2], Action: func() tea.Cmd { return tea.Quit }},
	}

	h.disabled = make(map[int]bool)
	for i, it := range items {
		if it.Disabled {
			h.disabled[i] = true
		}
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) CapturesEscape() bool { return h.entering }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.entering {
		return h.updateInput(msg)
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) beginTopicEntry() tea.Cmd {
	h.entering = true
	h.input = components.NewTextInput("photosynthesis, plate tectonics", 200, 48)
	return h.input.Init()
}

func (h *HomeScreen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, h.cancel):
			h.entering = false
			return h, nil
		case key.Matches(kmsg, h.submit):
			topics := ParseTopics(h.input.Value())
			if len(topics) == 0 {
				h.input.SetError("enter at least one topic")
				return h, nil
			}
			if len(topics) > maxTopics {
				h.input.SetError("at most 10 topics per quiz")
				return h, nil
			}
			h.entering = false
			sources := make([]activity.Source, len(topics))
			for i, t := range topics {
				sources[i] = conceptgen.NewSource(h.opts.Generator, t, h.opts.ConceptsPerGroup)
			}
			return h, h.startQuiz(sources)
		}
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) startQuiz(sources []activity.Source) tea.Cmd {
	cfg := h.opts.Board
	cfg.Sources = sources
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: board.New(cfg)}
	}
}

// ParseTopics splits a comma separated topic line, dropping blanks and
// repeats.
func ParseTopics(line string) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, t := range strings.Split(line, ",") {
		t = strings.TrimSpace(t)
		k := strings.ToLower(t)
		if t == "" || seen[k] {
			continue
		}
		seen[k] = true
		topics = append(topics, t)
	}
	return topics
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || layout.IsCompactWidth(width)
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.opts.QuizTitle, len(h.opts.Board.Sources), h.opts.ProviderName, cw),
	}

	if h.entering {
		sections = append(sections,
			renderNote("Topics, separated by commas. One question per topic.", cw),
			h.input.View())
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, h.disabled, cw))
		if h.opts.Generator == nil {
			sections = append(sections, renderNote("⚠ Set an LLM API key to generate quizzes (see conceptsort --help)", cw))
		}
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
