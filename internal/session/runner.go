// Package session runs one interactive assessment end to end: three open
// questions, the two recall games, identity capture, the log append, and the
// trend summary with feedback.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"cogtest/internal/feedback"
	"cogtest/internal/games"
	"cogtest/internal/store"
	"cogtest/internal/term"
)

// Scorer evaluates free-text answers.
type Scorer interface {
	Similarity(ctx context.Context, answer, expected string) (float64, error)
	CategoryScore(answer, category string, target int) float64
}

// RecallGames runs the stimulus/response exercises.
type RecallGames interface {
	NumberRecall(t *term.Terminal) (games.Result, error)
	WordRecall(t *term.Terminal) (games.Result, error)
}

const repeatSentence = "The cat sat on the mat"

// Runner wires the assessment's collaborators together. All dependencies are
// constructed once at process start and injected.
type Runner struct {
	scorer Scorer
	games  RecallGames
	log    *store.Log
	fb     *feedback.Generator
	term   *term.Terminal
	tz     *time.Location
	clock  func() time.Time
	logger *zap.Logger
}

func NewRunner(scorer Scorer, g RecallGames, log *store.Log, fb *feedback.Generator, t *term.Terminal, tz *time.Location, clock func() time.Time, logger *zap.Logger) *Runner {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{scorer: scorer, games: g, log: log, fb: fb, term: t, tz: tz, clock: clock, logger: logger}
}

// UserID derives the grouping key for the log: lower-cased nickname, the last
// four phone digits, and the email or "noemail". The key is never validated
// beyond presence.
func UserID(nickname, phoneLast4, email string) string {
	if email == "" {
		email = "noemail"
	}
	return strings.ToLower(nickname) + "_" + phoneLast4 + "_" + email
}

// Run administers the full test. A similarity-backend failure aborts the run;
// only feedback generation degrades gracefully.
func (r *Runner) Run(ctx context.Context) error {
	r.term.Header("Starting Cognitive Test")

	entries, err := r.askQuestions(ctx)
	if err != nil {
		return err
	}

	number, err := r.games.NumberRecall(r.term)
	if err != nil {
		return err
	}
	entries = append(entries, store.Entry{
		Type:     "memory",
		Question: "Number Recall",
		Expected: number.Stimulus,
		Answer:   number.Response,
		Score:    number.Score,
	})

	words, err := r.games.WordRecall(r.term)
	if err != nil {
		return err
	}
	entries = append(entries, store.Entry{
		Type:     "recall",
		Question: "Word Recall",
		Expected: words.Stimulus,
		Answer:   words.Response,
		Score:    words.Score,
	})

	userID, err := r.askIdentity()
	if err != nil {
		return err
	}

	// One timestamp for the whole save, so every entry lands in the same
	// session group.
	timestamp := r.clock().In(r.tz).Format("2006-01-02 15:04:05")
	if err := r.log.Append(userID, timestamp, entries); err != nil {
		return err
	}
	r.term.Success("Session saved to " + r.log.Path())
	r.logger.Info("session saved",
		zap.String("user_id", userID),
		zap.String("timestamp", timestamp),
		zap.Int("entries", len(entries)))

	return r.printSummary(ctx, userID)
}

func (r *Runner) askQuestions(ctx context.Context) ([]store.Entry, error) {
	weekday := r.clock().In(r.tz).Weekday().String()

	var entries []store.Entry

	answer, err := r.askOne("1. What day of the week is it?")
	if err != nil {
		return nil, err
	}
	score, err := r.scorer.Similarity(ctx, answer, weekday)
	if err != nil {
		return nil, err
	}
	entries = append(entries, store.Entry{
		Type: "text", Question: "1. What day of the week is it?",
		Expected: weekday, Answer: answer, Score: score,
	})

	answer, err = r.askOne("2. Can you name three animals?")
	if err != nil {
		return nil, err
	}
	entries = append(entries, store.Entry{
		Type: "text", Question: "2. Can you name three animals?",
		Expected: "Any 3 animals", Answer: answer,
		Score: r.scorer.CategoryScore(answer, "animal", 3),
	})

	question := "3. Please repeat this sentence: " + repeatSentence + "."
	answer, err = r.askOne(question)
	if err != nil {
		return nil, err
	}
	score, err = r.scorer.Similarity(ctx, answer, repeatSentence)
	if err != nil {
		return nil, err
	}
	entries = append(entries, store.Entry{
		Type: "text", Question: question,
		Expected: repeatSentence, Answer: answer, Score: score,
	})

	return entries, nil
}

func (r *Runner) askOne(question string) (string, error) {
	r.term.Println(question)
	return r.term.Prompt("Your answer:")
}

func (r *Runner) askIdentity() (string, error) {
	nickname, err := r.term.Prompt("Nickname:")
	if err != nil {
		return "", err
	}
	phone, err := r.term.Prompt("Last 4 digits of phone:")
	if err != nil {
		return "", err
	}
	email, err := r.term.Prompt("Email (optional):")
	if err != nil {
		return "", err
	}
	return UserID(strings.TrimSpace(nickname), strings.TrimSpace(phone), strings.TrimSpace(email)), nil
}

func (r *Runner) printSummary(ctx context.Context, userID string) error {
	summary, err := r.log.SummarizeUser(userID)
	if err != nil {
		return err
	}
	for i, s := range summary {
		r.term.Println(fmt.Sprintf("Session %d - %s: Avg Score = %.2f", i+1, s.Timestamp, store.Round2(s.Mean)))
	}

	trend, ok := store.TrendBetweenLastTwo(summary)
	if !ok {
		return nil
	}
	msg := r.fb.Generate(ctx, userID, trend.Prev, trend.Curr, trend.Label)
	r.term.Println("")
	r.term.Println("Feedback: " + msg)
	return nil
}
