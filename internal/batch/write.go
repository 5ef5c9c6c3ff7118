package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// WriteText writes one "input<TAB>output" line per result. Failed lines are
// written as "input<TAB>error: message".
func WriteText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Failed() {
			fmt.Fprintf(bw, "%s\terror: %s\n", r.Input, r.Error)
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", r.Input, r.Output)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("batch: write text: %w", err)
	}
	return nil
}

// WriteJSON writes results as JSON lines.
func WriteJSON(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return fmt.Errorf("batch: encode line %d: %w", results[i].Line, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("batch: write json: %w", err)
	}
	return nil
}
