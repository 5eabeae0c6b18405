package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/edgard/reactop/internal/export"
	"github.com/edgard/reactop/internal/report"
)

func TestRank(t *testing.T) {
	t.Parallel()

	msgs := []report.Processed{
		{ID: 1, TotalReactions: 2},
		{ID: 2, TotalReactions: 7},
		{ID: 3, TotalReactions: 7},
		{ID: 4, TotalReactions: 5},
	}

	tests := []struct {
		name    string
		limit   int
		wantIDs []int64
	}{
		{name: "descending with stable ties", limit: 10, wantIDs: []int64{2, 3, 4, 1}},
		{name: "truncated to limit", limit: 2, wantIDs: []int64{2, 3}},
		{name: "limit zero yields empty", limit: 0, wantIDs: []int64{}},
		{name: "limit equals length", limit: 4, wantIDs: []int64{2, 3, 4, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := report.Rank(msgs, tt.limit)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Rank() returned %d entries, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Rank()[%d].ID = %d, want %d", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	msgs := []report.Processed{
		{ID: 1, TotalReactions: 2},
		{ID: 2, TotalReactions: 7},
	}

	report.Rank(msgs, 2)
	if msgs[0].ID != 1 || msgs[1].ID != 2 {
		t.Errorf("Rank() reordered its input: %+v", msgs)
	}
}

func TestLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		chatID    int64
		messageID int64
		want      string
	}{
		{name: "supergroup prefix stripped", chatID: -1001234567890, messageID: 10,
			want: "https://t.me/c/1234567890/10"},
		{name: "plain id unchanged", chatID: 987654321, messageID: 42,
			want: "https://t.me/c/987654321/42"},
		{name: "negative without prefix unchanged", chatID: -42, messageID: 1,
			want: "https://t.me/c/-42/1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := report.Link(tt.chatID, tt.messageID); got != tt.want {
				t.Errorf("Link(%d, %d) = %q, want %q", tt.chatID, tt.messageID, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	loc := resolve(t, "+0000")
	ex := &export.Export{
		Name: "My Channel",
		ID:   -1001234567890,
		Messages: []export.Message{
			{ID: 10, Type: "message", DateUnixtime: epoch(2023, time.May, 1, 12, 30),
				Reactions: []export.Reaction{{Count: 2}}},
			{ID: 11, Type: "message", DateUnixtime: epoch(2023, time.May, 2, 8, 15),
				Reactions: []export.Reaction{{Count: 7}}},
			{ID: 12, Type: "service", DateUnixtime: epoch(2023, time.May, 3, 8, 15)},
			{ID: 13, Type: "message", DateUnixtime: epoch(2022, time.May, 3, 8, 15),
				Reactions: []export.Reaction{{Count: 9}}},
		},
	}

	rep := report.Build(ex, 2023, loc, 5)

	if rep.ChatName != "My Channel" || rep.Year != 2023 || rep.Timezone != "+0000" {
		t.Errorf("header fields = %q/%d/%q, want My Channel/2023/+0000", rep.ChatName, rep.Year, rep.Timezone)
	}
	if rep.Total != 4 || rep.Eligible != 2 {
		t.Errorf("Total/Eligible = %d/%d, want 4/2", rep.Total, rep.Eligible)
	}
	if len(rep.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(rep.Entries))
	}

	first, second := rep.Entries[0], rep.Entries[1]
	if first.Rank != 1 || first.TotalReactions != 7 || first.Link != "https://t.me/c/1234567890/11" {
		t.Errorf("Entries[0] = %+v, want rank 1, 7 reactions, link to message 11", first)
	}
	if first.Date != "2023-05-02 08:15" {
		t.Errorf("Entries[0].Date = %q, want %q", first.Date, "2023-05-02 08:15")
	}
	if second.Rank != 2 || second.TotalReactions != 2 || second.Link != "https://t.me/c/1234567890/10" {
		t.Errorf("Entries[1] = %+v, want rank 2, 2 reactions, link to message 10", second)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	t.Parallel()

	loc := resolve(t, "+0300")
	ex := &export.Export{
		ID: 987654321,
		Messages: []export.Message{
			{ID: 1, Type: "message", DateUnixtime: epoch(2023, time.May, 1, 12, 0),
				Reactions: []export.Reaction{{Count: 3}}},
			{ID: 2, Type: "message", DateUnixtime: epoch(2023, time.May, 2, 12, 0),
				Reactions: []export.Reaction{{Count: 3}}},
		},
	}

	first := report.Build(ex, 2023, loc, 5).Text()
	second := report.Build(ex, 2023, loc, 5).Text()
	if first != second {
		t.Errorf("Build() output differs between runs:\n%s\n---\n%s", first, second)
	}
}

func TestReportText(t *testing.T) {
	t.Parallel()

	rep := &report.Report{
		Year:     2023,
		Timezone: "+0300",
		Limit:    5,
		Entries: []report.Entry{
			{Rank: 1, Date: "2023-05-02 08:15", Link: "https://t.me/c/1234567890/11", TotalReactions: 7},
			{Rank: 2, Date: "2023-05-01 12:30", Link: "https://t.me/c/1234567890/10", TotalReactions: 2},
		},
	}

	got := rep.Text()
	want := "--- Top 5 messages of 2023 (TZ: +0300) ---\n" +
		"1. 2023-05-02 08:15 - https://t.me/c/1234567890/11 (Reactions: 7)\n" +
		"2. 2023-05-01 12:30 - https://t.me/c/1234567890/10 (Reactions: 2)\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if !strings.HasSuffix(got, "\n") {
		t.Error("Text() should end with a newline")
	}
}
