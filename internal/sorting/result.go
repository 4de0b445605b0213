package sorting

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidResult is returned by Result.Validate.
var ErrInvalidResult = errors.New("invalid round result")

// Result is the immutable outcome of one round.
type Result struct {
	// Score is in [0, 10], rounded to one decimal.
	Score float64 `json:"score"`

	// ElapsedMs is nil when the round was never started.
	ElapsedMs *int64 `json:"elapsedTimeMs"`

	RegretFactor int `json:"regretFactor"`
}

// ElapsedSeconds returns the elapsed time in whole seconds, rounded, or 0
// when no time was recorded.
func (r Result) ElapsedSeconds() int64 {
	if r.ElapsedMs == nil {
		return 0
	}
	return int64(math.Round(float64(*r.ElapsedMs) / 1000))
}

// Validate checks the result's numeric bounds.
func (r Result) Validate() error {
	if math.IsNaN(r.Score) || r.Score < 0 || r.Score > 10 {
		return fmt.Errorf("%w: score %v out of range", ErrInvalidResult, r.Score)
	}
	if r.RegretFactor < 0 {
		return fmt.Errorf("%w: negative regret factor %d", ErrInvalidResult, r.RegretFactor)
	}
	if r.ElapsedMs != nil && *r.ElapsedMs < 0 {
		return fmt.Errorf("%w: negative elapsed time %d", ErrInvalidResult, *r.ElapsedMs)
	}
	return nil
}

// ScoreFor converts a correct count into a 0-10 score with one decimal.
func ScoreFor(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct*100)/float64(total)) / 10
}
