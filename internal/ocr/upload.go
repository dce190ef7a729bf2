package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"cogtest/internal/store"
)

// Overrides are caller-supplied values that take precedence, field by field,
// over whatever the OCR extraction found.
type Overrides struct {
	Nickname string
	Digits   string
	GameName string
	Score    string
}

// Result is the outcome of one upload. When required fields are missing,
// Saved is false, Missing names them, and nothing was written.
type Result struct {
	Saved   bool
	Missing []string
	Row     store.Row
}

// Processor ingests offline score sheets into the session log.
type Processor struct {
	engine Engine
	log    *store.Log
	tz     *time.Location
	clock  func() time.Time
	logger *zap.Logger
}

// NewProcessor builds a Processor. clock may be nil (time.Now); logger may be
// nil.
func NewProcessor(engine Engine, log *store.Log, tz *time.Location, clock func() time.Time, logger *zap.Logger) *Processor {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{engine: engine, log: log, tz: tz, clock: clock, logger: logger}
}

// Upload OCRs the image, extracts fields, merges overrides (override wins),
// and appends one log row when nickname, digits, game name, and score are all
// present. A non-numeric score is a returned error; missing fields are a
// non-error Result with nothing written.
func (p *Processor) Upload(ctx context.Context, imagePath string, ov Overrides) (Result, error) {
	timestamp := p.clock().In(p.tz).Format("2006-01-02 15:04:05")

	text := p.engine.ExtractText(ctx, imagePath)
	fields := ExtractFields(text)

	nickname := firstNonEmpty(ov.Nickname, fields.Nickname)
	digits := firstNonEmpty(ov.Digits, fields.Digits)
	gameName := firstNonEmpty(ov.GameName, fields.GameName)
	scoreText := firstNonEmpty(ov.Score, fields.Score)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"nickname", nickname},
		{"digits", digits},
		{"game_name", gameName},
		{"score", scoreText},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		p.logger.Warn("could not extract all required fields",
			zap.String("image", imagePath),
			zap.Strings("missing", missing))
		return Result{Missing: missing}, nil
	}

	score, err := strconv.ParseFloat(scoreText, 64)
	if err != nil {
		return Result{}, fmt.Errorf("parse score %q: %w", scoreText, err)
	}

	agent := fields.Agent
	if agent == "" {
		agent = "unknown"
	}

	row := store.Row{
		UserID:    strings.ToLower(nickname) + "_" + digits,
		Timestamp: timestamp,
		Entry: store.Entry{
			Type:     gameName,
			Question: "offline_upload",
			Expected: "N/A",
			Answer:   "OCR by " + agent,
			Score:    score,
		},
	}
	if err := p.log.Append(row.UserID, row.Timestamp, []store.Entry{row.Entry}); err != nil {
		return Result{}, fmt.Errorf("append offline row: %w", err)
	}

	p.logger.Info("saved offline score",
		zap.String("game", gameName),
		zap.Float64("score", score),
		zap.String("agent", agent),
		zap.String("date", fields.Date))
	return Result{Saved: true, Row: row}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
