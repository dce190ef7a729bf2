// Package feedback turns the last two session averages into a short
// motivational message. The generative backend is best-effort: any failure
// falls back to a deterministic template that performs no external calls.
package feedback

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TextModel generates text from a prompt.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator produces trend feedback for a user.
type Generator struct {
	model   TextModel
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a Generator. model may be nil, in which case every message is
// the template fallback. A zero timeout defaults to 30s.
func New(model TextModel, timeout time.Duration, logger *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{model: model, timeout: timeout, logger: logger}
}

// Generate asks the text model for a motivational message built from the
// user's last two session averages. It never fails: unavailable backend,
// timeout, or model error all degrade to Fallback.
func (g *Generator) Generate(ctx context.Context, userID string, prev, curr float64, trend string) string {
	if g.model == nil {
		return Fallback(trend, prev, curr)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"The user %s completed a cognitive test.\n"+
			"Previous score: %.2f\n"+
			"Current score: %.2f\n"+
			"Trend: %s\n"+
			"Write a short motivational message and next task suggestion.",
		userID, prev, curr, trend)

	msg, err := g.model.Generate(ctx, prompt)
	if err != nil || msg == "" {
		g.logger.Warn("feedback generation failed, using fallback", zap.Error(err))
		return Fallback(trend, prev, curr)
	}
	return msg
}

// Fallback is the deterministic feedback template.
func Fallback(trend string, prev, curr float64) string {
	return fmt.Sprintf("Score %s from %.2f to %.2f. Keep it up!", trend, prev, curr)
}
