package recovery

import (
	"fmt"
	"time"
)

type Kind string

const (
	Skipped       Kind = "SKIPPED"
	Unrecoverable Kind = "UNRECOVERABLE"
	Recovered     Kind = "RECOVERED"
	Failed        Kind = "FAILED"
)

// Outcome is the single, immutable result of processing one candidate.
// Only the fields relevant to Kind are set.
type Outcome struct {
	Kind      Kind
	Path      string
	FileType  string
	Reason    string
	Err       error
	Decision  Decision
	Recovered RecoveredDetails
	At        time.Time
}

// Decision holds the filesystem facts the engine based its verdict on.
// EncryptedBytes comes straight from the file and is untrusted.
type Decision struct {
	EncryptedBytes uint32
	FileSize       int64
}

type RecoveredDetails struct {
	OutputPath     string
	RecoveredBytes int64
	TotalBytes     int64
	Percent        int
	DetectedMIME   string
	HeaderVerified bool
}

func NewSkipped(c Candidate, reason string) Outcome {
	return Outcome{Kind: Skipped, Path: c.Path, FileType: c.FileType, Reason: reason, At: time.Now()}
}

func NewUnrecoverable(c Candidate, d Decision, reason string) Outcome {
	return Outcome{Kind: Unrecoverable, Path: c.Path, FileType: c.FileType, Reason: reason, Decision: d, At: time.Now()}
}

func NewFailed(c Candidate, d Decision, err error) Outcome {
	return Outcome{Kind: Failed, Path: c.Path, FileType: c.FileType, Reason: err.Error(), Err: err, Decision: d, At: time.Now()}
}

func NewRecovered(c Candidate, d Decision, details RecoveredDetails) Outcome {
	return Outcome{Kind: Recovered, Path: c.Path, FileType: c.FileType, Decision: d, Recovered: details, At: time.Now()}
}

func (o Outcome) IsRecovered() bool {
	return o.Kind == Recovered
}

// String renders the outcome the way the log line reads.
func (o Outcome) String() string {
	switch o.Kind {
	case Recovered:
		return fmt.Sprintf("SUCCESS: up to %d%% file content recovered", o.Recovered.Percent)
	case Failed:
		return fmt.Sprintf("Failed (%s)", o.Reason)
	default:
		return fmt.Sprintf("Skipped (%s)", o.Reason)
	}
}

// RecoveredBytes is the size of the intact remainder: everything after the
// 4-byte prefix and the encrypted region.
func RecoveredBytes(fileSize int64, encrypted uint32) int64 {
	return (fileSize - LengthPrefixSize) - int64(encrypted)
}

// PercentRecovered is 100 - floor(100 * encrypted / fileSize).
func PercentRecovered(fileSize int64, encrypted uint32) int {
	if fileSize <= 0 {
		return 0
	}
	return 100 - int(100*int64(encrypted)/fileSize)
}

// LengthPrefixSize is the size of the little-endian encrypted length stored at
// the start of every victim file, and of the trailing block dropped on rebuild.
const LengthPrefixSize = 4
