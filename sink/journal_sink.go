package sink

import (
	"context"
	"file-restorer/domain/recovery"
	"file-restorer/infrastructure/storage"
	"sync/atomic"
)

// JournalSink persists every outcome of a run, plus the run summary, so a
// later inspection can tell which files were rebuilt and how well.
type JournalSink struct {
	repository storage.IOutcomeRepository
	runID      string
	rootDir    string
	seq        atomic.Uint64
}

func NewJournalSink(repository storage.IOutcomeRepository, runID, rootDir string) *JournalSink {
	return &JournalSink{repository: repository, runID: runID, rootDir: rootDir}
}

func (j *JournalSink) Report(_ context.Context, o recovery.Outcome) error {
	return j.repository.StoreOutcome(toOutcomeRecord(j.runID, j.seq.Add(1), o))
}

func (j *JournalSink) Summarize(_ context.Context, s recovery.Summary) error {
	return j.repository.StoreRun(storage.RunRecord{
		RunID:         j.runID,
		RootDir:       j.rootDir,
		Attempted:     s.Attempted,
		Recovered:     s.Recovered,
		Skipped:       s.Skipped,
		Unrecoverable: s.Unrecoverable,
		Failed:        s.Failed,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
	})
}

func toOutcomeRecord(runID string, seq uint64, o recovery.Outcome) storage.OutcomeRecord {
	return storage.OutcomeRecord{
		RunID:          runID,
		Seq:            seq,
		Kind:           string(o.Kind),
		Path:           o.Path,
		FileType:       o.FileType,
		Reason:         o.Reason,
		EncryptedBytes: o.Decision.EncryptedBytes,
		FileSize:       o.Decision.FileSize,
		OutputPath:     o.Recovered.OutputPath,
		RecoveredBytes: o.Recovered.RecoveredBytes,
		Percent:        o.Recovered.Percent,
		DetectedMIME:   o.Recovered.DetectedMIME,
		HeaderVerified: o.Recovered.HeaderVerified,
		At:             o.At,
	}
}
