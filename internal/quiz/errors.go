package quiz

import "errors"

var (
	// ErrNotReady is returned for operations that need a loaded,
	// unfinished quiz.
	ErrNotReady = errors.New("quiz is not in progress")

	// ErrUnsortedItems is returned when advancing with items left in the
	// unsorted pool.
	ErrUnsortedItems = errors.New("every concept must be sorted before advancing")

	// ErrFinished is returned for operations on a finished quiz.
	ErrFinished = errors.New("quiz is finished")

	// ErrNoQuestions is the load error when the sources yield nothing.
	ErrNoQuestions = errors.New("no questions loaded")

	// ErrAlreadyLoaded is returned when starting a load on a quiz that
	// already has its questions.
	ErrAlreadyLoaded = errors.New("quiz is already loaded")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("quiz session closed")
)
