package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/journalapp/journal/internal/model"
)

const unknownError = "Unknown Error"

// renderEntries prints the entry list as a table.
func renderEntries(w io.Writer, entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries yet. Create one with `journal new`.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPHOTO")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, oneLine(e.Title), e.PhotoURL)
	}
	_ = tw.Flush()
}

// renderEntry prints a single entry with its full notes.
func renderEntry(w io.Writer, e *model.Entry) {
	fmt.Fprintf(w, "#%d %s\n", e.ID, e.Title)
	fmt.Fprintf(w, "Photo: %s\n\n", e.PhotoURL)
	fmt.Fprintln(w, e.Notes)
}

// renderError prints "Error: <message>".
func renderError(w io.Writer, err error) {
	msg := unknownError
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > 60 {
		return string(r[:57]) + "..."
	}
	return s
}
