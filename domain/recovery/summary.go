package recovery

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Summary counts the outcomes of one run. Counters are atomic so a summary can
// be read by a reporter while the walk is still going.
type Summary struct {
	Attempted     uint64
	Recovered     uint64
	Skipped       uint64
	Unrecoverable uint64
	Failed        uint64
	DirsScanned   uint64
	DirErrors     uint64
	StartedAt     time.Time
	EndedAt       time.Time
}

func NewSummary() *Summary {
	return &Summary{StartedAt: time.Now()}
}

func (s *Summary) Record(o Outcome) {
	atomic.AddUint64(&s.Attempted, 1)
	switch o.Kind {
	case Recovered:
		atomic.AddUint64(&s.Recovered, 1)
	case Skipped:
		atomic.AddUint64(&s.Skipped, 1)
	case Unrecoverable:
		atomic.AddUint64(&s.Unrecoverable, 1)
	case Failed:
		atomic.AddUint64(&s.Failed, 1)
	}
}

func (s *Summary) IncrDirsScanned() {
	atomic.AddUint64(&s.DirsScanned, 1)
}

func (s *Summary) IncrDirErrors() {
	atomic.AddUint64(&s.DirErrors, 1)
}

func (s *Summary) Finish() {
	s.EndedAt = time.Now()
}

// Snapshot returns a copy safe to hand to reporters.
func (s *Summary) Snapshot() Summary {
	return Summary{
		Attempted:     atomic.LoadUint64(&s.Attempted),
		Recovered:     atomic.LoadUint64(&s.Recovered),
		Skipped:       atomic.LoadUint64(&s.Skipped),
		Unrecoverable: atomic.LoadUint64(&s.Unrecoverable),
		Failed:        atomic.LoadUint64(&s.Failed),
		DirsScanned:   atomic.LoadUint64(&s.DirsScanned),
		DirErrors:     atomic.LoadUint64(&s.DirErrors),
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Recovered %d of %d files", s.Recovered, s.Attempted)
}
