package board

import (
	"time"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/quiz"
)

// loadedMsg carries the outcome of one load attempt.
type loadedMsg struct {
	Ticket     quiz.LoadTicket
	Activities []activity.Activity
	Err        error
}

// clockTickMsg refreshes the timer and expires toasts.
type clockTickMsg time.Time
