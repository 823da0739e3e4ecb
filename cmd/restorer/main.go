package main

import (
	"context"
	"errors"
	"file-restorer/contract"
	"file-restorer/domain/signature"
	"file-restorer/infrastructure/disk"
	"file-restorer/infrastructure/storage"
	"file-restorer/internal"
	"file-restorer/runtime"
	"file-restorer/sink"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every deferred close (journal, log file) ahead of the exit code.
func run() error {
	// 1. Configuration: .env, environment, then flags
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	parseFlags(&config)
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Signatures
	registry := signature.Default()
	if config.SignaturesFile != "" {
		overlay, err := signature.LoadFile(config.SignaturesFile)
		if err != nil {
			return err
		}
		registry = registry.Merge(overlay)
		log.Info("Signature overlay loaded", "file", config.SignaturesFile, "types", overlay.Len())
	}

	// 3. Reporters
	runID := uuid.NewString()
	reporters := []contract.Reporter{
		sink.NewConsoleSink(os.Stdout, config.Colours),
		sink.NewLogSink(log),
	}

	if config.LogFile != "" {
		logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer logFile.Close()
		fileLogger := slog.New(slog.NewTextHandler(logFile, nil)).With("run", runID)
		reporters = append(reporters, sink.NewLogSink(fileLogger))
	}

	if config.JournalPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.JournalPath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("journal opening failed: %w", err)
		}
		defer func() {
			log.Debug("Closing journal...")
			_ = db.Close()
		}()
		repository := storage.NewOutcomeRepository(db, log)
		reporters = append(reporters, sink.NewJournalSink(repository, runID, config.TargetDir))
		log.Info("Journaling outcomes", "path", config.JournalPath, "run", runID)
	}

	// 4. Interruption stops the walk before the next candidate
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Walk
	request := runtime.RunRequest{
		TargetDir:     config.TargetDir,
		FileTypes:     config.Types(),
		MaxFileSize:   config.MaxFileSize,
		MinFreeBytes:  uint64(max(config.MinFreeBytes, 0)),
		SuffixPattern: config.Pattern(),
	}
	restorer := runtime.NewRestorer(log, disk.NewUsageProbe())
	_, err := restorer.Run(ctx, request, registry, sink.NewFanout(reporters...))
	if errors.Is(err, context.Canceled) {
		log.Warn("Interrupted, remaining files were not processed")
		return nil
	}
	return err
}

// parseFlags lets the command line override the environment. A single
// positional argument is taken as the target directory.
func parseFlags(config *internal.Config) {
	dir := flag.String("dir", config.TargetDir, "directory to scan recursively")
	types := flag.String("types", config.FileTypes, "comma separated file types to recover (default: all registered)")
	maxSize := flag.Int64("max-size", config.MaxFileSize, "skip files larger than this many bytes (0: unlimited)")
	pattern := flag.String("pattern", config.Pattern(), "regular expression matching the ransomware suffix")
	signatures := flag.String("signatures", config.SignaturesFile, "YAML file of extra hex signatures")
	journal := flag.String("journal", config.JournalPath, "badger directory journaling every outcome")
	logFile := flag.String("log-file", config.LogFile, "file receiving the outcome log (empty: none)")
	colours := flag.Bool("colours", config.Colours, "colourise console output")
	flag.Parse()

	config.TargetDir = *dir
	if flag.NArg() == 1 {
		config.TargetDir = flag.Arg(0)
	}
	config.FileTypes = *types
	config.MaxFileSize = *maxSize
	config.SuffixPattern = *pattern
	config.SignaturesFile = *signatures
	config.JournalPath = *journal
	config.LogFile = *logFile
	config.Colours = *colours
}
