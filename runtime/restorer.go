package runtime

import (
	"context"
	"file-restorer/contract"
	"file-restorer/domain/recovery"
	"file-restorer/domain/signature"
	"file-restorer/domain/suffix"
	"file-restorer/errors"
	"file-restorer/runtime/workers"
	"file-restorer/services"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// RunRequest describes one recovery pass over a directory tree.
type RunRequest struct {
	TargetDir     string   `validate:"required,max=4096"`
	FileTypes     []string `validate:"dive,alphanum,max=16"`
	MaxFileSize   int64    `validate:"gte=0"`
	MinFreeBytes  uint64
	SuffixPattern string `validate:"required"`
}

// Restorer wires the matcher, the recovery engine and the walker for a run.
type Restorer struct {
	log       *slog.Logger
	probe     contract.SpaceProbe
	validator *validator.Validate
}

func NewRestorer(log *slog.Logger, probe contract.SpaceProbe) *Restorer {
	return &Restorer{log: log, probe: probe, validator: validator.New()}
}

// Run validates the request then walks the target directory. Only invalid
// configuration returns an error before the walk; per-file problems are
// outcomes. The returned summary is valid even when err is a context error.
func (r *Restorer) Run(
	ctx context.Context,
	request RunRequest,
	registry signature.Registry,
	reporter contract.Reporter,
) (recovery.Summary, error) {
	request.FileTypes = signature.NormalizeAll(request.FileTypes)
	if err := r.validator.Struct(request); err != nil {
		return recovery.Summary{}, fmt.Errorf("invalid run request: %w", err)
	}

	info, err := os.Stat(request.TargetDir)
	if err != nil {
		return recovery.Summary{}, fmt.Errorf("target directory: %w", err)
	}
	if !info.IsDir() {
		return recovery.Summary{}, fmt.Errorf("%w: %s", errors.ErrTargetNotDirectory, request.TargetDir)
	}

	matcher, err := suffix.NewMatcher(request.SuffixPattern)
	if err != nil {
		return recovery.Summary{}, err
	}

	if unknown := lo.Without(request.FileTypes, registry.Types()...); len(unknown) > 0 {
		r.log.Warn("Filtered types have no registered signature and will be skipped", "types", unknown)
	}
	eligible := registry.Restrict(request.FileTypes)

	engine := services.NewRecoveryService(r.log, eligible, r.probe, request.MaxFileSize, request.MinFreeBytes)
	summary := recovery.NewSummary()
	worker := workers.NewFileScannerWorker(r.log, request.TargetDir, matcher, engine, reporter, summary)

	r.log.Debug("Starting worker", "worker", contract.GetWorkerName(worker), "types", eligible.Types())
	err = worker.Run(ctx)
	return summary.Snapshot(), err
}
