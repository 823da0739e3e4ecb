package sink

import (
	"context"
	"errors"
	"file-restorer/contract"
	"file-restorer/domain/recovery"
)

// Fanout forwards every record to all its reporters. A failing reporter does
// not prevent the others from receiving the record; errors are joined.
type Fanout struct {
	reporters []contract.Reporter
}

func NewFanout(reporters ...contract.Reporter) *Fanout {
	return &Fanout{reporters: reporters}
}

func (f *Fanout) Add(reporters ...contract.Reporter) *Fanout {
	f.reporters = append(f.reporters, reporters...)
	return f
}

func (f *Fanout) Report(ctx context.Context, o recovery.Outcome) error {
	var errs []error
	for _, r := range f.reporters {
		if err := r.Report(ctx, o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) Summarize(ctx context.Context, s recovery.Summary) error {
	var errs []error
	for _, r := range f.reporters {
		if err := r.Summarize(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
