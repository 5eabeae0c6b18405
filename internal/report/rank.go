package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/edgard/reactop/internal/export"
)

// Rank orders msgs by total reaction count, highest first, and truncates the
// result to limit entries. The sort is stable: messages with equal counts
// keep their original input order. A limit of zero yields an empty result.
func Rank(msgs []Processed, limit int) []Processed {
	ranked := make([]Processed, len(msgs))
	copy(ranked, msgs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalReactions > ranked[j].TotalReactions
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}

	return ranked
}

// Entry is one display-ready row of the leaderboard.
type Entry struct {
	Rank           int
	Date           string
	Link           string
	TotalReactions int
}

// Report is the finished leaderboard for one chat and year, ready for
// rendering by any output sink.
type Report struct {
	ChatName string
	Year     int
	Timezone string
	Limit    int
	Total    int // messages in the export
	Eligible int // messages that survived processing
	Entries  []Entry
}

// Build runs the full pipeline over an export: process, rank, and render
// each surviving message into a display entry.
func Build(ex *export.Export, year int, loc *time.Location, limit int) *Report {
	processed := Process(ex.Messages, year, loc)
	ranked := Rank(processed, limit)

	entries := make([]Entry, 0, len(ranked))
	for i, m := range ranked {
		entries = append(entries, Entry{
			Rank:           i + 1,
			Date:           m.Date.Format(displayLayout),
			Link:           Link(ex.ID, m.ID),
			TotalReactions: m.TotalReactions,
		})
	}

	return &Report{
		ChatName: ex.Name,
		Year:     year,
		Timezone: loc.String(),
		Limit:    limit,
		Total:    len(ex.Messages),
		Eligible: len(processed),
		Entries:  entries,
	}
}

// Link builds the t.me deep link for one message. Exported broadcast and
// supergroup IDs carry a -100 prefix in front of the real channel ID; the
// prefix is stripped for links, other IDs are used as-is.
func Link(chatID, messageID int64) string {
	clean := strings.TrimPrefix(strconv.FormatInt(chatID, 10), "-100")
	return "https://t.me/c/" + clean + "/" + strconv.FormatInt(messageID, 10)
}

// Text renders the leaderboard in the console format, one numbered line per
// entry.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- Top %d messages of %d (TZ: %s) ---\n", r.Limit, r.Year, r.Timezone)
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%d. %s - %s (Reactions: %d)\n", e.Rank, e.Date, e.Link, e.TotalReactions)
	}

	return b.String()
}
