// Package store persists scored assessment items to an append-only CSV log
// and reconstructs per-user session summaries from it.
//
// The log is the sole durable state: a fixed 7-column header, one row per
// scored item, rows never rewritten or deleted. There is no locking; the
// tool assumes a single process appending at a time.
package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Header is the fixed column layout of the log. Column order and count never
// change across appends.
var Header = []string{"user_id", "timestamp", "question_type", "question", "expected", "answer", "score"}

// Entry is one evaluated question or exercise. Immutable after creation;
// written once to the log.
type Entry struct {
	Type     string
	Question string
	Expected string
	Answer   string
	Score    float64
}

// Row is a flattened Entry as persisted: Entry plus the session key.
type Row struct {
	UserID    string
	Timestamp string
	Entry
}

// SessionSummary is the mean score of one session (all rows sharing a
// timestamp for one user). Mean is kept unrounded; round at display time.
type SessionSummary struct {
	Timestamp string
	Mean      float64
	Entries   int
}

// Log is a handle on the CSV log file. The file is created lazily on the
// first append.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes one row per entry, in input order, all sharing userID and
// timestamp. The header row is written only when the file does not exist yet.
func (l *Log) Append(userID, timestamp string, entries []Entry) error {
	writeHeader := false
	if fi, err := os.Stat(l.path); os.IsNotExist(err) || (err == nil && fi.Size() == 0) {
		writeHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, e := range entries {
		record := []string{
			userID, timestamp,
			e.Type, e.Question, e.Expected, e.Answer,
			strconv.FormatFloat(e.Score, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush log: %w", err)
	}
	return nil
}

// Rows reads the entire log. A missing file is an empty log, not an error.
func (l *Log) Rows() ([]Row, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var rows []Row
	for i, rec := range records {
		if i == 0 && rec[0] == Header[0] {
			continue
		}
		score, err := strconv.ParseFloat(rec[6], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad score %q: %w", i+1, rec[6], err)
		}
		rows = append(rows, Row{
			UserID:    rec[0],
			Timestamp: rec[1],
			Entry: Entry{
				Type:     rec[2],
				Question: rec[3],
				Expected: rec[4],
				Answer:   rec[5],
				Score:    score,
			},
		})
	}
	return rows, nil
}

// SummarizeUser groups the user's rows by timestamp and computes the mean
// score per group. Groups come back in file-encounter order, which is
// chronological since sessions append in increasing time order.
func (l *Log) SummarizeUser(userID string) ([]SessionSummary, error) {
	rows, err := l.Rows()
	if err != nil {
		return nil, err
	}

	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		if row.UserID != userID {
			continue
		}
		if _, seen := counts[row.Timestamp]; !seen {
			order = append(order, row.Timestamp)
		}
		sums[row.Timestamp] += row.Score
		counts[row.Timestamp]++
	}

	summary := make([]SessionSummary, 0, len(order))
	for _, ts := range order {
		summary = append(summary, SessionSummary{
			Timestamp: ts,
			Mean:      sums[ts] / float64(counts[ts]),
			Entries:   counts[ts],
		})
	}
	return summary, nil
}

// Trend labels for the last-two-sessions comparison.
const (
	TrendImproved = "improved"
	TrendDeclined = "declined"
	TrendSteady   = "stayed consistent"
)

// Trend compares the two most recent session averages.
type Trend struct {
	Prev  float64
	Curr  float64
	Label string
}

// TrendBetweenLastTwo classifies the last two summary entries. The second
// return is false when fewer than two sessions exist; the trend is undefined
// and callers skip it.
func TrendBetweenLastTwo(summary []SessionSummary) (Trend, bool) {
	if len(summary) < 2 {
		return Trend{}, false
	}
	prev := Round2(summary[len(summary)-2].Mean)
	curr := Round2(summary[len(summary)-1].Mean)
	t := Trend{Prev: prev, Curr: curr}
	switch {
	case curr > prev:
		t.Label = TrendImproved
	case curr < prev:
		t.Label = TrendDeclined
	default:
		t.Label = TrendSteady
	}
	return t, true
}

// Round2 rounds to two decimal places, the precision scores are recorded and
// displayed at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
