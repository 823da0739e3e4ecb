package services

import (
	"bytes"
	"context"
	"encoding/binary"
	"file-restorer/domain/recovery"
	"file-restorer/domain/signature"
	"file-restorer/domain/suffix"
	errs "file-restorer/errors"
	"file-restorer/mocks"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bandarSuffix = ".id-1334663620_fudx@lycos.com"

// writeVictim lays out a file the way the ransomware leaves it: a little-endian
// encrypted length followed by body. The file is size 4+len(body).
func writeVictim(t *testing.T, dir, name string, encrypted uint32, body []byte) recovery.Candidate {
	t.Helper()
	data := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint32(data, encrypted)
	data = append(data, body...)

	path := filepath.Join(dir, name+bandarSuffix)
	require.NoError(t, os.WriteFile(path, data, 0644))

	match, ok := suffix.MustDefault().Match(filepath.Base(path))
	require.True(t, ok)
	return recovery.NewCandidate(path, match)
}

func sequentialBody(n int) []byte {
	body := make([]byte, n)
	for i := range body {
		body[i] = byte(i % 251)
	}
	return body
}

func newService(maxFileSize int64) *RecoveryService {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewRecoveryService(log, signature.Default(), nil, maxFileSize, 0)
}

func TestRecoveryService_Process_Reference_Example(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	// Given a 1000 bytes PDF victim declaring 800 encrypted bytes
	candidate := writeVictim(t, dir, "invoice.pdf", 800, sequentialBody(996))
	source, err := os.ReadFile(candidate.Path)
	req.NoError(err)
	req.Len(source, 1000)

	// When the file is processed
	outcome := newService(100_000_000).Process(ctx, candidate)

	// Then it is recovered with the expected figures
	req.Equal(recovery.Recovered, outcome.Kind)
	req.Equal(uint32(800), outcome.Decision.EncryptedBytes)
	req.Equal(int64(1000), outcome.Decision.FileSize)
	req.Equal(int64(196), outcome.Recovered.RecoveredBytes)
	req.Equal(int64(1000), outcome.Recovered.TotalBytes)
	req.Equal(20, outcome.Recovered.Percent)
	req.Equal(filepath.Join(dir, "CORRUPT__invoice.pdf"), outcome.Recovered.OutputPath)
	req.Equal("application/pdf", outcome.Recovered.DetectedMIME)
	req.True(outcome.Recovered.HeaderVerified)

	// And the output carries signature, filler and the intact remainder
	output, err := os.ReadFile(outcome.Recovered.OutputPath)
	req.NoError(err)
	req.Len(output, 996)

	pdf, _ := signature.Default().Lookup("PDF")
	req.Equal(pdf, output[:16])
	req.Equal(bytes.Repeat([]byte{FillByte}, 800-16), output[16:800])
	req.Equal(source[800:996], output[800:996])

	// And the source is untouched
	after, err := os.ReadFile(candidate.Path)
	req.NoError(err)
	req.Equal(source, after)
}

func TestRecoveryService_Process_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		encrypted uint32
		kind      recovery.Kind
		recovered int64
	}{
		{"Encrypted equals size minus 4", 100, 96, recovery.Unrecoverable, 0},
		{"Encrypted equals size minus 5", 100, 95, recovery.Recovered, 1},
		{"Encrypted larger than file", 100, 0xFFFFFFFF, recovery.Unrecoverable, 0},
		{"Only the length prefix", 4, 0, recovery.Unrecoverable, 0},
		{"Nothing encrypted", 100, 0, recovery.Recovered, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			candidate := writeVictim(t, t.TempDir(), "notes.txt", tt.encrypted, sequentialBody(tt.size-4))

			outcome := newService(0).Process(context.Background(), candidate)

			req.Equal(tt.kind, outcome.Kind)
			if tt.kind == recovery.Unrecoverable {
				req.Equal(ReasonNoRecoverable, outcome.Reason)
				req.NoFileExists(candidate.OutputPath())
				return
			}
			req.Equal(tt.recovered, outcome.Recovered.RecoveredBytes)
			info, err := os.Stat(candidate.OutputPath())
			req.NoError(err)
			req.Equal(int64(tt.size-4), info.Size())
		})
	}
}

func TestRecoveryService_Process_Empty_Signature_Fills_Whole_Region(t *testing.T) {
	req := require.New(t)
	body := sequentialBody(60)
	candidate := writeVictim(t, t.TempDir(), "notes.txt", 20, body)

	outcome := newService(0).Process(context.Background(), candidate)
	req.Equal(recovery.Recovered, outcome.Kind)

	output, err := os.ReadFile(candidate.OutputPath())
	req.NoError(err)
	req.Len(output, 60)
	req.Equal(bytes.Repeat([]byte{'#'}, 20), output[:20])
	// Output offset 20 holds source offset 20, i.e. body[16].
	req.Equal(body[16:56], output[20:60])
}

func TestRecoveryService_Process_Skips(t *testing.T) {
	ctx := context.Background()

	t.Run("Unsupported type", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "movie.mkv", 10, sequentialBody(100))

		outcome := newService(0).Process(ctx, candidate)

		req.Equal(recovery.Skipped, outcome.Kind)
		req.Equal(ReasonUnsupportedType, outcome.Reason)
		req.NoFileExists(candidate.OutputPath())
	})

	t.Run("No extension", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "Makefile", 10, sequentialBody(100))
		req.Empty(candidate.FileType)

		outcome := newService(0).Process(ctx, candidate)
		req.Equal(ReasonUnsupportedType, outcome.Reason)
	})

	t.Run("Restricted registry", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))
		service := NewRecoveryService(slog.Default(), signature.Default().Restrict([]string{"PDF"}), nil, 0, 0)

		outcome := service.Process(ctx, candidate)
		req.Equal(ReasonUnsupportedType, outcome.Reason)
	})

	t.Run("Already patched", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))
		req.NoError(os.WriteFile(candidate.OutputPath(), []byte("previous result"), 0644))

		outcome := newService(0).Process(ctx, candidate)

		req.Equal(recovery.Skipped, outcome.Kind)
		req.Equal(ReasonAlreadyPatched, outcome.Reason)
		previous, err := os.ReadFile(candidate.OutputPath())
		req.NoError(err)
		req.Equal("previous result", string(previous))
	})

	t.Run("Exceeds size limit", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))

		outcome := newService(103).Process(ctx, candidate)

		req.Equal(recovery.Skipped, outcome.Kind)
		req.Equal(ReasonExceedsSizeLimit, outcome.Reason)
		req.NoFileExists(candidate.OutputPath())
	})

	t.Run("Size equal to limit is processed", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))

		outcome := newService(104).Process(ctx, candidate)
		req.Equal(recovery.Recovered, outcome.Kind)
	})
}

func TestRecoveryService_Process_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("Malformed length prefix", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		path := filepath.Join(dir, "tiny.txt"+bandarSuffix)
		req.NoError(os.WriteFile(path, []byte{0x01, 0x02}, 0644))
		match, _ := suffix.MustDefault().Match(filepath.Base(path))

		outcome := newService(0).Process(ctx, recovery.NewCandidate(path, match))

		req.Equal(recovery.Failed, outcome.Kind)
		req.ErrorIs(outcome.Err, errs.ErrMalformedLength)
	})

	t.Run("Signature longer than encrypted region", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.docx", 4, sequentialBody(100))

		outcome := newService(0).Process(ctx, candidate)

		req.Equal(recovery.Failed, outcome.Kind)
		req.ErrorIs(outcome.Err, errs.ErrSignatureTooLong)
		req.NoFileExists(candidate.OutputPath())
	})

	t.Run("Signature exactly the encrypted region", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.docx", 8, sequentialBody(100))

		outcome := newService(0).Process(ctx, candidate)
		req.Equal(recovery.Recovered, outcome.Kind)

		output, err := os.ReadFile(candidate.OutputPath())
		req.NoError(err)
		zip, _ := signature.Default().Lookup("DOCX")
		req.Equal(zip, output[:8])
	})

	t.Run("Source vanished", func(t *testing.T) {
		req := require.New(t)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))
		req.NoError(os.Remove(candidate.Path))

		outcome := newService(0).Process(ctx, candidate)
		req.Equal(recovery.Failed, outcome.Kind)
		req.ErrorIs(outcome.Err, os.ErrNotExist)
	})

	t.Run("Insufficient disk space", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		probe := mocks.NewMockSpaceProbe(ctrl)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))

		probe.EXPECT().Free(filepath.Dir(candidate.Path)).Return(uint64(150), nil).Times(1)
		service := NewRecoveryService(slog.Default(), signature.Default(), probe, 0, 100)

		outcome := service.Process(ctx, candidate)

		req.Equal(recovery.Failed, outcome.Kind)
		req.ErrorIs(outcome.Err, errs.ErrInsufficientSpace)
		req.NoFileExists(candidate.OutputPath())
	})

	t.Run("Probe error does not block recovery", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		probe := mocks.NewMockSpaceProbe(ctrl)
		candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))

		probe.EXPECT().Free(gomock.Any()).Return(uint64(0), os.ErrPermission).Times(1)
		service := NewRecoveryService(slog.Default(), signature.Default(), probe, 0, 0)

		req.Equal(recovery.Recovered, service.Process(ctx, candidate).Kind)
	})
}

func TestRecoveryService_Process_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	candidate := writeVictim(t, t.TempDir(), "photo.jpg", 50, sequentialBody(500))
	service := newService(0)

	first := service.Process(ctx, candidate)
	req.Equal(recovery.Recovered, first.Kind)
	output, err := os.ReadFile(candidate.OutputPath())
	req.NoError(err)

	second := service.Process(ctx, candidate)
	req.Equal(recovery.Skipped, second.Kind)
	req.Equal(ReasonAlreadyPatched, second.Reason)

	again, err := os.ReadFile(candidate.OutputPath())
	req.NoError(err)
	req.Equal(output, again)
}

func TestWriteRegion_Large_Filler(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "large")
	size := fillChunkSize*2 + 17
	req.NoError(os.WriteFile(path, make([]byte, size+10), 0644))

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	req.NoError(err)
	req.NoError(writeRegion(f, []byte{0xFF, 0xD8}, int64(size)))
	req.NoError(f.Close())

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal([]byte{0xFF, 0xD8}, data[:2])
	req.Equal(bytes.Repeat([]byte{FillByte}, size-2), data[2:size])
	req.Equal(make([]byte, 10), data[size:])
}

func TestRebuild_Never_Touches_Existing_Output(t *testing.T) {
	req := require.New(t)
	candidate := writeVictim(t, t.TempDir(), "report.doc", 10, sequentialBody(100))
	req.NoError(os.WriteFile(candidate.OutputPath(), []byte("raced"), 0644))

	// Given an output created between the existence check and the copy
	created, err := rebuild(candidate.Path, candidate.OutputPath(), []byte{0xD0}, recovery.Decision{EncryptedBytes: 10, FileSize: 104})

	req.Error(err)
	req.False(created)
	data, err := os.ReadFile(candidate.OutputPath())
	req.NoError(err)
	req.Equal("raced", string(data))
}
