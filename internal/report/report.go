// Package report implements the leaderboard pipeline: it filters raw export
// records down to reacted messages of the target year, ranks them by total
// reaction count, and renders the ranked list with t.me deep links.
package report

import (
	"strconv"
	"time"

	"github.com/edgard/reactop/internal/export"
)

// displayLayout shows dates to the minute; seconds are never displayed.
const displayLayout = "2006-01-02 15:04"

// Processed is a message that survived filtering. It is constructed once by
// Process and never mutated afterwards.
type Processed struct {
	ID             int64
	TotalReactions int
	Date           time.Time
}

// Process filters msgs down to real messages authored in the target calendar
// year (evaluated in loc, not UTC) that received at least one reaction, and
// computes each survivor's total reaction count. The relative order of the
// input is preserved. Records that fail any step are skipped silently; a
// noisy export never aborts the run.
func Process(msgs []export.Message, year int, loc *time.Location) []Processed {
	out := make([]Processed, 0, len(msgs))

	for _, m := range msgs {
		if m.Type != "message" {
			continue
		}

		sec, err := strconv.ParseInt(m.DateUnixtime, 10, 64)
		if err != nil {
			continue
		}

		date := time.Unix(sec, 0).In(loc)
		if date.Year() != year {
			continue
		}

		total := 0
		for _, r := range m.Reactions {
			total += r.Count
		}
		if total == 0 {
			continue
		}

		out = append(out, Processed{
			ID:             m.ID,
			TotalReactions: total,
			Date:           date,
		})
	}

	return out
}
