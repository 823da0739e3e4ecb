package main

import (
	"bytes"
	"file-restorer/infrastructure/storage"
	"file-restorer/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrintOutcomes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIOutcomeRepository(ctrl)

	repository.EXPECT().ListOutcomes("run-1").Return([]storage.OutcomeRecord{
		{Seq: 1, Kind: "RECOVERED", FileType: "PDF", Path: "/d/a.pdf.x", Percent: 20, OutputPath: "/d/CORRUPT__a.pdf", DetectedMIME: "application/pdf"},
		{Seq: 2, Kind: "SKIPPED", FileType: "MP3", Path: "/d/b.mp3.x", Reason: "unsupported type"},
	}, nil)

	var out bytes.Buffer
	req.NoError(printOutcomes(&out, repository, "run-1"))

	req.Contains(out.String(), "20% -> /d/CORRUPT__a.pdf (application/pdf)")
	req.Contains(out.String(), "unsupported type")
}

func TestPrintRuns(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIOutcomeRepository(ctrl)

	repository.EXPECT().ListRuns().Return([]storage.RunRecord{
		{RunID: "run-1", RootDir: "/d", StartedAt: time.Date(2015, 5, 13, 10, 0, 0, 0, time.UTC), Attempted: 5, Recovered: 3},
	}, nil)

	var out bytes.Buffer
	req.NoError(printRuns(&out, repository))

	req.Contains(out.String(), "run-1")
	req.Contains(out.String(), "2015-05-13 10:00:00")
}
