package main

import (
	"file-restorer/infrastructure/storage"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	JournalPath string `envconfig:"JOURNAL_PATH" default:"restorer-journal"`
	RunID       string `envconfig:"RUN_ID"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbPath := flag.String("db", config.JournalPath, "Path to the badger journal")
	runID := flag.String("run", config.RunID, "Run to dump (default: list runs)")
	flag.Parse()

	// Note: BypassLockGuard allows reading while a restorer run holds the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := storage.NewOutcomeRepository(db, slog.Default())
	if *runID == "" {
		err = printRuns(os.Stdout, repository)
	} else {
		err = printOutcomes(os.Stdout, repository, *runID)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func printRuns(w io.Writer, repository storage.IOutcomeRepository) error {
	runs, err := repository.ListRuns()
	if err != nil {
		return err
	}
	table := newTable(w, "Run", "Root", "Started", "Attempted", "Recovered", "Skipped", "Unrecoverable", "Failed")
	for _, r := range runs {
		table.Append([]string{
			r.RunID,
			r.RootDir,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			strconv.FormatUint(r.Attempted, 10),
			strconv.FormatUint(r.Recovered, 10),
			strconv.FormatUint(r.Skipped, 10),
			strconv.FormatUint(r.Unrecoverable, 10),
			strconv.FormatUint(r.Failed, 10),
		})
	}
	table.Render()
	return nil
}

func printOutcomes(w io.Writer, repository storage.IOutcomeRepository, runID string) error {
	records, err := repository.ListOutcomes(runID)
	if err != nil {
		return err
	}
	table := newTable(w, "Seq", "Kind", "Type", "Path", "Detail")
	for _, r := range records {
		detail := r.Reason
		if r.Kind == "RECOVERED" {
			detail = fmt.Sprintf("%d%% -> %s (%s)", r.Percent, r.OutputPath, r.DetectedMIME)
		}
		table.Append([]string{strconv.FormatUint(r.Seq, 10), r.Kind, r.FileType, r.Path, detail})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
