// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/models"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatAuto = "auto"
)

// ResolveFormat turns FormatAuto into text for terminals and JSON otherwise
func ResolveFormat(format string, out *os.File) string {
	if format != FormatAuto {
		return format
	}
	if out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return FormatText
	}
	return FormatJSON
}

// JSON writes v as two-space indented JSON followed by a newline
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Text writes a human-readable summary of each contest result.
// contests supplies descriptions and choice labels.
func Text(w io.Writer, results []models.ContestResult, contests []models.Contest) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No valid votes.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		description := ""
		contest, ok := models.FindContest(contests, result.ContestID)
		if ok {
			description = contest.Description
		}

		fmt.Fprintf(tw, "Contest %d: %s\n", result.ContestID, description)
		fmt.Fprintf(tw, "Winner: %s (choice %d)\n", result.Winner.Text, result.Winner.ChoiceID)
		fmt.Fprintf(tw, "Total votes: %s\n", humanize.Comma(int64(result.TotalVotes)))

		for _, rv := range result.Results {
			label := ""
			if ok {
				if choice, found := contest.FindChoice(rv.ChoiceID); found {
					label = choice.Text
				}
			}
			fmt.Fprintf(tw, "\t%d\t%s\t%s\t%s\t\n",
				rv.ChoiceID,
				label,
				humanize.Comma(int64(rv.TotalCount)),
				share(rv.TotalCount, result.TotalVotes),
			)
		}
	}

	return tw.Flush()
}

// Rejections writes a one-line summary of rejected votes
func Rejections(w io.Writer, rejected, total int) error {
	if rejected == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s of %s votes rejected.\n",
		humanize.Comma(int64(rejected)),
		humanize.Comma(int64(total)),
	)
	return err
}

func share(count, total uint64) string {
	if total == 0 {
		return "0.0%"
	}
	return humanize.FormatFloat("#,###.#", float64(count)*100/float64(total)) + "%"
}
