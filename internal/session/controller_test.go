package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/ifsc-enricher/internal/pipeline"
	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

type fakeEnricher struct {
	result *pipeline.Result
	err    error
}

func (f *fakeEnricher) Run(context.Context) (*pipeline.Result, error) {
	return f.result, f.err
}

type fakeSearcher struct {
	calls  []string
	places []types.Place
	err    error
}

func (f *fakeSearcher) Search(_ context.Context, region string) ([]types.Place, error) {
	f.calls = append(f.calls, region)
	return f.places, f.err
}

var sampleHistory = []types.HistoryEntry{
	{Row: 1, Code: "SBIN0000001", Institution: "State Bank of India", Branch: "Kolkata Main"},
	{Row: 3, Code: "HDFC0000240", Institution: "HDFC Bank", Branch: "Fort"},
}

func runSession(t *testing.T, enricher Enricher, searcher Searcher, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := NewController(enricher, searcher, strings.NewReader(input), &out, &out, nil)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return out.String()
}

func TestEmptyRegionReprompts(t *testing.T) {
	searcher := &fakeSearcher{}
	out := runSession(t, &fakeEnricher{result: &pipeline.Result{}}, searcher, "\n   \n  Mumbai \nno\n")

	if len(searcher.calls) != 1 || searcher.calls[0] != "mumbai" {
		t.Fatalf("search calls = %q, want exactly [mumbai]", searcher.calls)
	}
	if n := strings.Count(out, "No region provided. Please try again."); n != 2 {
		t.Errorf("retry message printed %d times, want 2", n)
	}
	if n := strings.Count(out, regionPrompt); n != 3 {
		t.Errorf("region prompt printed %d times, want 3", n)
	}
}

func TestZeroResultsContinuesToHistory(t *testing.T) {
	out := runSession(t, &fakeEnricher{result: &pipeline.Result{}}, &fakeSearcher{}, "Goa\nno\n")

	if !strings.Contains(out, "\nNo banks found for goa.\n") {
		t.Errorf("missing no-results line:\n%s", out)
	}
	if !strings.Contains(out, historyPrompt) {
		t.Errorf("history prompt not shown:\n%s", out)
	}
}

func TestSearchErrorContinuesToHistory(t *testing.T) {
	searcher := &fakeSearcher{err: &types.LookupError{Service: "geocode", Subject: "delhi", Err: errors.New("dial tcp: timeout")}}
	out := runSession(t, &fakeEnricher{result: &pipeline.Result{History: sampleHistory}}, searcher, "delhi\nYES\n")

	if !strings.Contains(out, "Error fetching bank details:") {
		t.Errorf("search error not reported:\n%s", out)
	}
	if !strings.Contains(out, "IFSC Code Lookup History:") {
		t.Errorf("history not shown after search error:\n%s", out)
	}
}

func TestHistoryAnswers(t *testing.T) {
	tests := []struct {
		name    string
		history []types.HistoryEntry
		answer  string
		want    []string
		notWant []string
	}{
		{
			name:    "yes prints numbered entries",
			history: sampleHistory,
			answer:  "Yes",
			want: []string{
				"\nIFSC Code Lookup History:\n",
				"1. IFSC: SBIN0000001, Bank: State Bank of India, Branch: Kolkata Main\n",
				"2. IFSC: HDFC0000240, Bank: HDFC Bank, Branch: Fort\n",
			},
			notWant: []string{"Exiting..."},
		},
		{
			name:    "no with history exits",
			history: sampleHistory,
			answer:  "no",
			want:    []string{"\nExiting...\n"},
			notWant: []string{"IFSC: SBIN0000001"},
		},
		{
			name:    "anything else exits",
			history: sampleHistory,
			answer:  "y",
			want:    []string{"Exiting..."},
			notWant: []string{"Lookup History"},
		},
		{
			name:    "yes with empty history",
			answer:  "YES",
			want:    []string{"\nNo lookup history found.\n"},
			notWant: []string{"Exiting..."},
		},
	}
	for _, tt := range tests {
		searcher := &fakeSearcher{places: []types.Place{{DisplayName: "Bank"}}}
		out := runSession(t, &fakeEnricher{result: &pipeline.Result{History: tt.history}}, searcher, "pune\n"+tt.answer+"\n")
		for _, w := range tt.want {
			if !strings.Contains(out, w) {
				t.Errorf("%s: output missing %q:\n%s", tt.name, w, out)
			}
		}
		for _, nw := range tt.notWant {
			if strings.Contains(out, nw) {
				t.Errorf("%s: output unexpectedly contains %q", tt.name, nw)
			}
		}
	}
}

func TestEnrichmentFailureSkipsPrompts(t *testing.T) {
	searcher := &fakeSearcher{}
	enricher := &fakeEnricher{err: &types.FileError{Op: "open", Path: "sample.xlsx", Err: errors.New("no such file")}}
	out := runSession(t, enricher, searcher, "mumbai\nyes\n")

	if !strings.HasPrefix(out, "Error processing the Excel file: open sample.xlsx: no such file") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, regionPrompt) || len(searcher.calls) != 0 {
		t.Error("session continued after enrichment failure")
	}
}

func TestEndOfInputEndsSession(t *testing.T) {
	searcher := &fakeSearcher{}
	out := runSession(t, &fakeEnricher{result: &pipeline.Result{}}, searcher, "  \n")

	if len(searcher.calls) != 0 {
		t.Errorf("search called on EOF: %q", searcher.calls)
	}
	if strings.Contains(out, historyPrompt) {
		t.Error("history prompt shown after input closed")
	}
}

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Mumbai ", "mumbai"},
		{"TAMIL NADU", "tamil nadu"},
		{"\t\n", ""},
		{"Cafe\u0301 Town", "caf\u00e9 town"},
	}
	for _, tt := range tests {
		if got := NormalizeRegion(tt.in); got != tt.want {
			t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nlast"), &out)

	for _, want := range []string{"first", "last"} {
		got, err := p.Ask("? ")
		if err != nil || got != want {
			t.Fatalf("Ask = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := p.Ask("? "); err == nil {
		t.Error("Ask after end of input returned no error")
	}
}
