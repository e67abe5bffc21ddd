package driver

import "time"

// Stage is the pipeline step an Event refers to.
type Stage uint8

const (
	StageLoad Stage = iota + 1
	StageLex
	StageParse
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	}
	return "unknown"
}

type Status uint8

const (
	StatusQueued Status = iota + 1
	StatusWorking
	StatusDone
	StatusError
	StatusCached
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	case StatusCached:
		return "cached"
	}
	return "unknown"
}

// Event reports progress of one file during CheckDir.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// emit sends ev unless sink is nil; it gives up when ctx is done.
func emit(done <-chan struct{}, sink chan<- Event, ev Event) {
	if sink == nil {
		return
	}
	select {
	case sink <- ev:
	case <-done:
	}
}
