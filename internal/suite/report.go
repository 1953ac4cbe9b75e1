package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "=== Suite: %s (strict=%t) ===\n\n", r.Suite, r.Strict)

	header := []string{"Case", "Expression", "Expected", "Got", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%q\t%s\t%s\t%s\n", res.Case, res.Expr, res.Expected, res.Got, status)
	}

	fmt.Fprintf(tw, "\nPassed: %d  Failed: %d  Pass rate: %.2f%%\n", r.Passed, r.Failed, r.PassRate)

	return tw.Flush()
}

func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
