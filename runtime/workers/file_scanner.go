package workers

import (
	"context"
	"file-restorer/contract"
	"file-restorer/domain/recovery"
	"file-restorer/domain/suffix"
	"file-restorer/errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileScannerWorker implements the contract.Worker interface to walk a
// directory tree and hand every file renamed by the ransomware to a Processor.
// Files are handled one at a time, in lexical order within each directory, so
// two runs over the same tree log the same sequence.
type FileScannerWorker struct {
	log       *slog.Logger
	rootDir   string
	matcher   *suffix.Matcher
	processor contract.Processor
	reporter  contract.Reporter
	summary   *recovery.Summary
}

func NewFileScannerWorker(
	log *slog.Logger,
	rootDir string,
	matcher *suffix.Matcher,
	processor contract.Processor,
	reporter contract.Reporter,
	summary *recovery.Summary,
) *FileScannerWorker {
	return &FileScannerWorker{
		log:       log,
		rootDir:   rootDir,
		matcher:   matcher,
		processor: processor,
		reporter:  reporter,
		summary:   summary,
	}
}

// Run walks the whole tree then reports the summary. Cancellation is only
// observed between candidates: a file being rebuilt is always finished. The
// summary is reported even when the walk is interrupted.
func (w *FileScannerWorker) Run(ctx context.Context) error {
	w.log.Info("Recursively searching for encrypted files", "root", w.rootDir, "pattern", w.matcher.String())

	err := w.handleDirectory(ctx, w.rootDir)
	w.summary.Finish()

	snapshot := w.summary.Snapshot()
	// The context may be done already; the summary must still go out.
	if sumErr := w.reporter.Summarize(context.WithoutCancel(ctx), snapshot); sumErr != nil {
		w.log.Error("Summary reporting failed", "err", sumErr)
	}
	return err
}

func (w *FileScannerWorker) handleDirectory(ctx context.Context, currentDir string) error {
	entries, err := os.ReadDir(currentDir)
	if err != nil {
		w.summary.IncrDirErrors()
		w.log.Warn("Permission denied or path error", "path", currentDir, "err", err)
		return nil
	}
	w.summary.IncrDirsScanned()

	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		fullPath := filepath.Join(currentDir, entry.Name())
		if entry.IsDir() {
			if err := w.handleDirectory(ctx, fullPath); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		match, ok := w.matcher.Match(entry.Name())
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		w.processFile(ctx, recovery.NewCandidate(fullPath, match))
	}
	return nil
}

func (w *FileScannerWorker) processFile(ctx context.Context, candidate recovery.Candidate) {
	w.log.Info("Processing", "path", candidate.Path, "type", candidate.FileType)

	outcome := w.process(ctx, candidate)
	w.summary.Record(outcome)

	if err := w.reporter.Report(ctx, outcome); err != nil {
		w.log.Error("Outcome reporting failed", "path", candidate.Path, "err", err)
	}
}

// process shields the walk from a crashing processor: the file is reported as
// failed and the next candidate goes ahead.
func (w *FileScannerWorker) process(ctx context.Context, candidate recovery.Candidate) (outcome recovery.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Processor panic", "path", candidate.Path, "panic", r)
			outcome = recovery.NewFailed(candidate, recovery.Decision{}, fmt.Errorf("%w: %v", errors.ErrProcessorPanic, r))
		}
	}()
	return w.processor.Process(ctx, candidate)
}
