package sink

import (
	"context"
	"file-restorer/domain/recovery"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// ConsoleSink prints one coloured line per outcome and a summary table.
type ConsoleSink struct {
	out     io.Writer
	colours bool
}

func NewConsoleSink(out io.Writer, colours bool) *ConsoleSink {
	return &ConsoleSink{out: out, colours: colours}
}

func (c *ConsoleSink) Report(_ context.Context, o recovery.Outcome) error {
	var tag string
	switch o.Kind {
	case recovery.Recovered:
		tag = c.paint(color.FgGreen, "[+]")
	case recovery.Failed:
		tag = c.paint(color.FgRed, "[-]")
	case recovery.Unrecoverable:
		tag = c.paint(color.FgYellow, "[!]")
	default:
		tag = c.paint(color.FgBlue, "[*]")
	}
	_, err := fmt.Fprintf(c.out, "%s %s: %s\n", tag, o.Path, o.String())
	return err
}

func (c *ConsoleSink) Summarize(_ context.Context, s recovery.Summary) error {
	if _, err := fmt.Fprintf(c.out, "\n%s\n", c.paint(color.OpBold, s.String())); err != nil {
		return err
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Attempted", "Recovered", "Skipped", "Unrecoverable", "Failed", "Dir errors"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.Append([]string{
		strconv.FormatUint(s.Attempted, 10),
		strconv.FormatUint(s.Recovered, 10),
		strconv.FormatUint(s.Skipped, 10),
		strconv.FormatUint(s.Unrecoverable, 10),
		strconv.FormatUint(s.Failed, 10),
		strconv.FormatUint(s.DirErrors, 10),
	})
	table.Render()
	return nil
}

func (c *ConsoleSink) paint(code color.Color, text string) string {
	if !c.colours {
		return text
	}
	return code.Sprint(text)
}
