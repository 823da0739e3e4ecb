package services

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"file-restorer/contract"
	"file-restorer/domain/mimetypes"
	"file-restorer/domain/recovery"
	"file-restorer/domain/signature"
	errs "file-restorer/errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const (
	// FillByte overwrites the part of the encrypted region not covered by the signature.
	FillByte = '#'

	fillChunkSize = 64 * 1024

	ReasonUnsupportedType  = "unsupported type"
	ReasonAlreadyPatched   = "already patched"
	ReasonExceedsSizeLimit = "exceeds size limit"
	ReasonNoRecoverable    = "no recoverable data"
)

// RecoveryService rebuilds the header of a partially encrypted file into a new
// CORRUPT__ copy. The source file is only ever opened for reading.
type RecoveryService struct {
	log      *slog.Logger
	registry signature.Registry
	probe    contract.SpaceProbe
	// maxFileSize of 0 disables the ceiling.
	maxFileSize  int64
	minFreeBytes uint64
}

func NewRecoveryService(
	log *slog.Logger,
	registry signature.Registry,
	probe contract.SpaceProbe,
	maxFileSize int64,
	minFreeBytes uint64,
) *RecoveryService {
	return &RecoveryService{
		log:          log,
		registry:     registry,
		probe:        probe,
		maxFileSize:  maxFileSize,
		minFreeBytes: minFreeBytes,
	}
}

// Process decides whether candidate is recoverable and, if so, writes the
// rebuilt copy. Checks run in a fixed order and stop at the first that applies.
func (s *RecoveryService) Process(ctx context.Context, candidate recovery.Candidate) recovery.Outcome {
	header, ok := s.registry.Lookup(candidate.FileType)
	if !ok {
		return recovery.NewSkipped(candidate, ReasonUnsupportedType)
	}

	output := candidate.OutputPath()
	if _, err := os.Lstat(output); err == nil {
		return recovery.NewSkipped(candidate, ReasonAlreadyPatched)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return recovery.NewFailed(candidate, recovery.Decision{}, fmt.Errorf("checking %s: %w", output, err))
	}

	info, err := os.Stat(candidate.Path)
	if err != nil {
		return recovery.NewFailed(candidate, recovery.Decision{}, fmt.Errorf("stat source: %w", err))
	}
	decision := recovery.Decision{FileSize: info.Size()}
	if s.maxFileSize > 0 && decision.FileSize > s.maxFileSize {
		return recovery.NewSkipped(candidate, ReasonExceedsSizeLimit)
	}

	decision.EncryptedBytes, err = readEncryptedLength(candidate.Path)
	if err != nil {
		return recovery.NewFailed(candidate, decision, err)
	}

	if int64(decision.EncryptedBytes) >= decision.FileSize-recovery.LengthPrefixSize {
		return recovery.NewUnrecoverable(candidate, decision, ReasonNoRecoverable)
	}

	if uint64(len(header)) > uint64(decision.EncryptedBytes) {
		return recovery.NewFailed(candidate, decision, fmt.Errorf("%w: %s signature is %d bytes, encrypted region is %d",
			errs.ErrSignatureTooLong, candidate.FileType, len(header), decision.EncryptedBytes))
	}

	if err := s.checkFreeSpace(ctx, output, decision.FileSize); err != nil {
		return recovery.NewFailed(candidate, decision, err)
	}

	if created, err := rebuild(candidate.Path, output, header, decision); err != nil {
		// A partial output would make the next run skip this file as already patched.
		if created {
			if rmErr := os.Remove(output); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				s.log.WarnContext(ctx, "Partial output left behind", "path", output, "err", rmErr)
			}
		}
		return recovery.NewFailed(candidate, decision, err)
	}

	details := recovery.RecoveredDetails{
		OutputPath:     output,
		RecoveredBytes: recovery.RecoveredBytes(decision.FileSize, decision.EncryptedBytes),
		TotalBytes:     decision.FileSize,
		Percent:        recovery.PercentRecovered(decision.FileSize, decision.EncryptedBytes),
	}
	if mt, err := mimetype.DetectFile(output); err != nil {
		s.log.DebugContext(ctx, "MIME detection failed", "path", output, "err", err)
	} else {
		details.DetectedMIME = mt.String()
		details.HeaderVerified = mimetypes.Verify(details.DetectedMIME, candidate.FileType)
	}

	return recovery.NewRecovered(candidate, decision, details)
}

// checkFreeSpace refuses to duplicate a file when the volume could not hold
// the copy plus the configured reserve. Probe errors are not fatal: the write
// itself will fail if the disk is really full.
func (s *RecoveryService) checkFreeSpace(ctx context.Context, output string, size int64) error {
	if s.probe == nil {
		return nil
	}
	free, err := s.probe.Free(filepath.Dir(output))
	if err != nil {
		s.log.DebugContext(ctx, "Free space probe failed", "path", output, "err", err)
		return nil
	}
	if required := uint64(size) + s.minFreeBytes; free < required {
		return fmt.Errorf("%w: need %d bytes, %d free", errs.ErrInsufficientSpace, required, free)
	}
	return nil
}

// readEncryptedLength decodes the little-endian uint32 the ransomware stores
// in the first 4 bytes of the file.
func readEncryptedLength(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	var prefix [recovery.LengthPrefixSize]byte
	if _, err := io.ReadFull(f, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: %v", errs.ErrMalformedLength, err)
		}
		return 0, fmt.Errorf("read length prefix: %w", err)
	}
	return binary.LittleEndian.Uint32(prefix[:]), nil
}

// rebuild duplicates src to dst, overwrites the encrypted region with the
// signature followed by filler, and drops the trailing 4 bytes. created tells
// whether dst was created by this call, so only our own output is cleaned up.
func rebuild(src, dst string, header []byte, d recovery.Decision) (created bool, err error) {
	created, err = copyFile(src, dst)
	if err != nil {
		return created, err
	}
	return true, patch(dst, header, d)
}

func copyFile(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}

	// O_EXCL keeps the no-overwrite guarantee even if dst appeared since the check.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return false, fmt.Errorf("create output: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return true, fmt.Errorf("copy to output: %w", err)
	}
	if err := out.Close(); err != nil {
		return true, fmt.Errorf("close output: %w", err)
	}
	return true, nil
}

func patch(path string, header []byte, d recovery.Decision) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if err := writeRegion(f, header, int64(d.EncryptedBytes)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Truncate(d.FileSize - recovery.LengthPrefixSize); err != nil {
		_ = f.Close()
		return fmt.Errorf("truncate output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// writeRegion writes header at offset 0 then FillByte up to length.
func writeRegion(w io.WriterAt, header []byte, length int64) error {
	if _, err := w.WriteAt(header, 0); err != nil {
		return fmt.Errorf("write signature: %w", err)
	}
	chunk := bytes.Repeat([]byte{FillByte}, int(min(length, fillChunkSize)))
	for offset := int64(len(header)); offset < length; {
		n := min(length-offset, int64(len(chunk)))
		if _, err := w.WriteAt(chunk[:n], offset); err != nil {
			return fmt.Errorf("write filler: %w", err)
		}
		offset += n
	}
	return nil
}
