package sink

import (
	"context"
	"file-restorer/domain/recovery"
	"log/slog"
)

// LogSink writes outcomes as structured log lines. Pointed at a file handler
// it doubles as the persistent run log.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Report(ctx context.Context, o recovery.Outcome) error {
	attrs := []any{"path", o.Path, "type", o.FileType, "kind", o.Kind}
	switch o.Kind {
	case recovery.Recovered:
		l.log.InfoContext(ctx, o.String(), append(attrs,
			"output", o.Recovered.OutputPath,
			"encrypted_bytes", o.Decision.EncryptedBytes,
			"recovered_bytes", o.Recovered.RecoveredBytes,
			"percent", o.Recovered.Percent,
			"mime", o.Recovered.DetectedMIME,
			"header_verified", o.Recovered.HeaderVerified,
		)...)
	case recovery.Failed:
		l.log.WarnContext(ctx, o.String(), append(attrs, "err", o.Err)...)
	default:
		l.log.InfoContext(ctx, o.String(), append(attrs, "reason", o.Reason)...)
	}
	return nil
}

func (l LogSink) Summarize(ctx context.Context, s recovery.Summary) error {
	l.log.InfoContext(ctx, s.String(),
		"attempted", s.Attempted,
		"recovered", s.Recovered,
		"skipped", s.Skipped,
		"unrecoverable", s.Unrecoverable,
		"failed", s.Failed,
		"dirs", s.DirsScanned,
		"dir_errors", s.DirErrors,
		"duration", s.EndedAt.Sub(s.StartedAt).String(),
	)
	return nil
}
