// Package notify holds short-lived toast notifications shown over the board.
package notify

import (
	"fmt"
	"time"
)

// Level is the toast severity.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "info"
}

// Notice is one toast.
type Notice struct {
	Level Level
	Text  string
}

// ForScore builds the feedback toast for a check of the board.
func ForScore(correct, total int) Notice {
	switch {
	case total > 0 && correct == total:
		return Notice{Level: LevelSuccess, Text: "Perfect! Every concept is in the right group."}
	case correct == 0:
		return Notice{Level: LevelError, Text: "No concept is in the right place. Try again!"}
	}
	return Notice{Level: LevelInfo, Text: fmt.Sprintf("You got %d of %d concepts right.", correct, total)}
}

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Queue holds the latest notice until it expires. A new push replaces the
// current notice. The zero value uses DefaultTTL.
type Queue struct {
	TTL time.Duration

	current Notice
	expires time.Time
}

// Push shows n from now.
func (q *Queue) Push(n Notice, now time.Time) {
	ttl := q.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	q.current = n
	q.expires = now.Add(ttl)
}

// Current returns the visible notice, if any.
func (q *Queue) Current(now time.Time) (Notice, bool) {
	if q.expires.IsZero() || !now.Before(q.expires) {
		return Notice{}, false
	}
	return q.current, true
}

// Clear drops the visible notice.
func (q *Queue) Clear() {
	q.current = Notice{}
	q.expires = time.Time{}
}
