package quiz

// Phase is the lifecycle stage of a Session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoadFailed
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoadFailed:
		return "load-failed"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}
