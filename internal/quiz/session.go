package quiz

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/sorting"
)

// LoadTicket identifies one load attempt. Completions carrying an older
// ticket are ignored.
type LoadTicket uint64

// Entry pairs a question title with the result recorded for it.
type Entry struct {
	Title  string
	Result sorting.Result
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithRoundOptions passes options to every round the session starts.
func WithRoundOptions(opts ...sorting.Option) Option {
	return func(s *Session) { s.roundOpts = append(s.roundOpts, opts...) }
}

// Session sequences sorting rounds over a list of questions.
//
// While in progress len(Results()) == Index(); once finished every
// question has exactly one result. A Session is driven from a single
// goroutine and is not safe for concurrent use.
type Session struct {
	ID string

	phase     Phase
	questions []activity.Activity
	index     int
	results   []sorting.Result
	round     *sorting.Round

	loadErr error
	attempt LoadTicket
	closed  bool

	log       zerolog.Logger
	roundOpts []sorting.Option
}

// New creates a session in the loading phase.
func New(opts ...Option) *Session {
	s := &Session{
		ID:  uuid.New().String(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.ID).Logger()
	return s
}

// BeginLoad starts a load attempt and returns its ticket.
func (s *Session) BeginLoad() (LoadTicket, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.phase != PhaseLoading && s.phase != PhaseLoadFailed {
		return 0, ErrAlreadyLoaded
	}
	s.attempt++
	s.phase = PhaseLoading
	s.loadErr = nil
	s.log.Info().Uint64("attempt", uint64(s.attempt)).Msg("quiz load started")
	return s.attempt, nil
}

// Retry starts a new load attempt after a failure.
func (s *Session) Retry() (LoadTicket, error) {
	if s.phase != PhaseLoadFailed {
		return 0, fmt.Errorf("retry in phase %s: %w", s.phase, ErrNotReady)
	}
	return s.BeginLoad()
}

// CompleteLoad applies the outcome of a load attempt. It reports whether
// the outcome was applied; completions for a closed session, a stale
// ticket or a session no longer loading are dropped.
func (s *Session) CompleteLoad(ticket LoadTicket, questions []activity.Activity, err error) bool {
	if s.closed || ticket != s.attempt || s.phase != PhaseLoading {
		s.log.Debug().
			Uint64("ticket", uint64(ticket)).
			Bool("closed", s.closed).
			Str("phase", s.phase.String()).
			Msg("ignoring stale load completion")
		return false
	}

	if err == nil && len(questions) == 0 {
		err = ErrNoQuestions
	}
	if err != nil {
		s.phase = PhaseLoadFailed
		s.loadErr = err
		s.log.Warn().Err(err).Msg("quiz load failed")
		return true
	}

	s.questions = questions
	s.results = make([]sorting.Result, 0, len(questions))
	s.index = 0
	s.round = sorting.NewRound(append(slices.Clone(s.roundOpts), sorting.WithLogger(s.log))...)
	s.round.Start(questions[0])
	s.phase = PhaseInProgress

	s.log.Info().Int("questions", len(questions)).Msg("quiz loaded")
	return true
}

// Load fetches every source and starts the first round. It is the
// synchronous form of BeginLoad + activity.LoadAll + CompleteLoad.
func (s *Session) Load(ctx context.Context, sources []activity.Source) error {
	ticket, err := s.BeginLoad()
	if err != nil {
		return err
	}
	qs, err := activity.LoadAll(ctx, sources)
	if !s.CompleteLoad(ticket, qs, err) {
		return ErrClosed
	}
	return s.loadErr
}

// Close detaches the session. Pending loads are ignored afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.log.Info().Str("phase", s.phase.String()).Msg("quiz closed")
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// LoadErr returns the error of the last failed load.
func (s *Session) LoadErr() error { return s.loadErr }

// Round returns the active round, or nil before loading.
func (s *Session) Round() *sorting.Round { return s.round }

// Current returns the question being played.
func (s *Session) Current() (activity.Activity, bool) {
	if s.phase != PhaseInProgress {
		return activity.Activity{}, false
	}
	return s.questions[s.index], true
}

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Len is the number of loaded questions.
func (s *Session) Len() int { return len(s.questions) }

// IsLastQuestion reports whether the current question is the final one.
func (s *Session) IsLastQuestion() bool {
	return len(s.questions) > 0 && s.index == len(s.questions)-1
}

// CanAdvance reports whether Advance would be accepted.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseInProgress && s.round.CanAdvance()
}

// Advance finalizes the current round and moves on. It is rejected while
// any concept is still unsorted.
func (s *Session) Advance() error {
	if err := s.checkInProgress(); err != nil {
		return err
	}
	if !s.round.CanAdvance() {
		return ErrUnsortedItems
	}
	return s.submit(s.round.Finalize())
}

// SubmitAndAdvance records res for the current question, then either
// finishes the quiz or starts the next round. Like Advance it returns
// ErrUnsortedItems while the round still has concepts in the unsorted zone.
func (s *Session) SubmitAndAdvance(res sorting.Result) error {
	if err := s.checkInProgress(); err != nil {
		return err
	}
	if !s.round.CanAdvance() {
		return ErrUnsortedItems
	}
	return s.submit(res)
}

func (s *Session) submit(res sorting.Result) error {
	if err := res.Validate(); err != nil {
		return err
	}

	s.results = append(s.results, res)
	s.log.Info().
		Int("question", s.index).
		Float64("score", res.Score).
		Int("regret", res.RegretFactor).
		Int64("elapsed_s", res.ElapsedSeconds()).
		Msg("round submitted")

	if s.IsLastQuestion() {
		s.phase = PhaseFinished
		s.log.Info().Int("results", len(s.results)).Msg("quiz finished")
		return nil
	}

	s.index++
	s.round.Start(s.questions[s.index])
	return nil
}

func (s *Session) checkInProgress() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.phase == PhaseFinished:
		return ErrFinished
	case s.phase != PhaseInProgress:
		return ErrNotReady
	}
	return nil
}

// Results returns a copy of the recorded results.
func (s *Session) Results() []sorting.Result {
	out := make([]sorting.Result, len(s.results))
	copy(out, s.results)
	return out
}

// Summary pairs each result with the title of the question it belongs to.
func (s *Session) Summary() []Entry {
	entries := make([]Entry, len(s.results))
	for i, r := range s.results {
		entries[i] = Entry{Title: s.questions[i].Title, Result: r}
	}
	return entries
}
