// Package games implements the two recall exercises: a random digit sequence
// and a fixed word list. Randomness, the memorization delay, and the sleep
// call are all injected so tests run instantly and deterministically.
package games

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"cogtest/internal/term"
)

// WordList is the fixed word-recall stimulus.
var WordList = []string{"apple", "table", "car", "banana", "house"}

// digitLengths are the possible number-recall stimulus lengths, chosen
// uniformly.
var digitLengths = []int{4, 5, 6}

// Result is one finished exercise: the score plus the raw stimulus and
// response strings, exactly as shown and typed.
type Result struct {
	Score    float64
	Stimulus string
	Response string
}

// Games runs the recall exercises.
type Games struct {
	rng   *rand.Rand
	delay time.Duration
	sleep func(time.Duration)
}

// New builds a Games runner. delay is the memorization window (5s in the
// paper test); sleep may be stubbed in tests, nil means time.Sleep.
func New(rng *rand.Rand, delay time.Duration, sleep func(time.Duration)) *Games {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Games{rng: rng, delay: delay, sleep: sleep}
}

// NumberRecall shows a random digit string of length 4, 5, or 6, waits out
// the memorization window, clears the screen, and scores the typed response
// by positional digit matches. The read blocks indefinitely.
func (g *Games) NumberRecall(t *term.Terminal) (Result, error) {
	length := digitLengths[g.rng.Intn(len(digitLengths))]
	var sb strings.Builder
	for i := 0; i < length; i++ {
		fmt.Fprintf(&sb, "%d", g.rng.Intn(10))
	}
	number := sb.String()

	t.Stimulus("REMEMBER THIS NUMBER: " + number)
	g.sleep(g.delay)
	t.Clear()

	response, err := t.Prompt("Now type the number you saw:")
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:    ScoreDigits(number, response),
		Stimulus: number,
		Response: response,
	}, nil
}

// WordRecall shows the fixed five-word list, waits out the memorization
// window, clears, and scores the comma-separated response by set membership.
func (g *Games) WordRecall(t *term.Terminal) (Result, error) {
	stimulus := strings.Join(WordList, ", ")
	t.Stimulus("Memorize these words:\n" + stimulus)
	g.sleep(g.delay)
	t.Clear()

	raw, err := t.Prompt("Recall the words (comma-separated):")
	if err != nil {
		return Result{}, err
	}

	recalled := splitWords(raw)
	return Result{
		Score:    ScoreWords(WordList, recalled),
		Stimulus: stimulus,
		Response: strings.Join(recalled, ", "),
	}, nil
}

// ScoreDigits counts positionally matching digits over the stimulus length,
// rounded to two decimals. Positions beyond a short response never match;
// extra trailing digits in the response are ignored.
func ScoreDigits(stimulus, response string) float64 {
	matches := 0
	for i := 0; i < len(stimulus) && i < len(response); i++ {
		if stimulus[i] == response[i] {
			matches++
		}
	}
	return round2(float64(matches) / float64(len(stimulus)))
}

// ScoreWords counts stimulus words present anywhere in the recalled set,
// order-independent, over the stimulus length.
func ScoreWords(stimulus, recalled []string) float64 {
	set := make(map[string]bool, len(recalled))
	for _, w := range recalled {
		set[w] = true
	}
	correct := 0
	for _, w := range stimulus {
		if set[w] {
			correct++
		}
	}
	return round2(float64(correct) / float64(len(stimulus)))
}

func splitWords(raw string) []string {
	parts := strings.Split(strings.ToLower(raw), ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		words = append(words, strings.TrimSpace(p))
	}
	return words
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
