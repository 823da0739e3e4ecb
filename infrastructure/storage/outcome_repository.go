//go:generate go run go.uber.org/mock/mockgen -source=outcome_repository.go -destination=../../mocks/mock_outcome_repository.go -package=mocks
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	outcomePrefix = "outcome:"
	runPrefix     = "run:"
)

// OutcomeRecord is the journaled form of one recovery outcome.
type OutcomeRecord struct {
	RunID          string    `json:"run_id"`
	Seq            uint64    `json:"seq"`
	Kind           string    `json:"kind"`
	Path           string    `json:"path"`
	FileType       string    `json:"file_type"`
	Reason         string    `json:"reason,omitempty"`
	EncryptedBytes uint32    `json:"encrypted_bytes"`
	FileSize       int64     `json:"file_size"`
	OutputPath     string    `json:"output_path,omitempty"`
	RecoveredBytes int64     `json:"recovered_bytes,omitempty"`
	Percent        int       `json:"percent,omitempty"`
	DetectedMIME   string    `json:"detected_mime,omitempty"`
	HeaderVerified bool      `json:"header_verified,omitempty"`
	At             time.Time `json:"at"`
}

// RunRecord summarises one run over a target directory.
type RunRecord struct {
	RunID         string    `json:"run_id"`
	RootDir       string    `json:"root_dir"`
	Attempted     uint64    `json:"attempted"`
	Recovered     uint64    `json:"recovered"`
	Skipped       uint64    `json:"skipped"`
	Unrecoverable uint64    `json:"unrecoverable"`
	Failed        uint64    `json:"failed"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
}

type IOutcomeRepository interface {
	StoreOutcome(record OutcomeRecord) error
	StoreRun(run RunRecord) error
	ListOutcomes(runID string) ([]OutcomeRecord, error)
	ListRuns() ([]RunRecord, error)
}

type OutcomeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewOutcomeRepository(db *badger.DB, log *slog.Logger) *OutcomeRepository {
	return &OutcomeRepository{db: db, log: log}
}

// StoreOutcome persists a record under a key ordered by run then sequence,
// so a prefix scan returns a run's outcomes in processing order.
func (r OutcomeRepository) StoreOutcome(record OutcomeRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(outcomeKey(record.RunID, record.Seq), data)
	})
}

func (r OutcomeRepository) StoreRun(run RunRecord) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(runPrefix+run.RunID), data)
	})
}

func (r OutcomeRepository) ListOutcomes(runID string) ([]OutcomeRecord, error) {
	var records []OutcomeRecord
	err := scan(r.db, []byte(fmt.Sprintf("%s%s:", outcomePrefix, runID)), func(v []byte) error {
		var record OutcomeRecord
		if err := json.Unmarshal(v, &record); err != nil {
			return fmt.Errorf("failed to unmarshal outcome: %w", err)
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during outcome scan: %w", err)
	}
	return records, nil
}

// ListRuns returns every journaled run ordered by start time.
func (r OutcomeRepository) ListRuns() ([]RunRecord, error) {
	var runs []RunRecord
	err := scan(r.db, []byte(runPrefix), func(v []byte) error {
		var run RunRecord
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("failed to unmarshal run: %w", err)
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during run scan: %w", err)
	}
	slices.SortFunc(runs, func(a, b RunRecord) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
	return runs, nil
}

func scan(db *badger.DB, prefix []byte, fn func(v []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

func outcomeKey(runID string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", outcomePrefix, runID, seq))
}
