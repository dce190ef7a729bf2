// Package taxonomy answers "is this word a kind of X" questions by walking
// noun hypernym chains in a lexical database (WordNet 3.x file format).
package taxonomy

import "strings"

// Synset is one noun sense: its lemmas plus links to its broader senses.
type Synset struct {
	Words     []string
	Hypernyms []*Synset
}

// Lexicon looks up the noun senses of a word, most common sense first.
// Unknown words and non-nouns return nil.
type Lexicon interface {
	NounSynsets(word string) []*Synset
}

// senseLimit bounds the membership check to a word's two most common noun
// senses; rarer senses produce too many false positives (e.g. "cat" the
// vehicle).
const senseLimit = 2

// IsMember reports whether word names a kind of category: any hypernym chain
// of its first two noun senses contains a synset whose lemmas include the
// category word. A synset counts as part of its own chain, so the category
// word is a member of its own category.
func IsMember(lex Lexicon, word, category string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	synsets := lex.NounSynsets(word)
	if len(synsets) > senseLimit {
		synsets = synsets[:senseLimit]
	}
	for _, syn := range synsets {
		if chainContains(syn, category, make(map[*Synset]bool)) {
			return true
		}
	}
	return false
}

func chainContains(syn *Synset, category string, seen map[*Synset]bool) bool {
	if syn == nil || seen[syn] {
		return false
	}
	seen[syn] = true
	for _, w := range syn.Words {
		if strings.EqualFold(w, category) {
			return true
		}
	}
	for _, h := range syn.Hypernyms {
		if chainContains(h, category, seen) {
			return true
		}
	}
	return false
}
