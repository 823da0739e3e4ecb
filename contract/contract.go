//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"file-restorer/domain/recovery"
	"reflect"
)

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// for logging without asking every worker to name itself.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Processor turns one candidate into exactly one outcome.
// It never returns an error: faults are outcomes of kind Failed.
type Processor interface {
	Process(ctx context.Context, candidate recovery.Candidate) recovery.Outcome
}

// Reporter receives one record per attempted file and a final summary.
// A reporting error is logged by the caller and never stops the walk.
type Reporter interface {
	Report(ctx context.Context, outcome recovery.Outcome) error
	Summarize(ctx context.Context, summary recovery.Summary) error
}

// SpaceProbe reports the free bytes on the volume holding path.
type SpaceProbe interface {
	Free(path string) (uint64, error)
}
