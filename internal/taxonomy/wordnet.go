package taxonomy

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WordNet is a Lexicon backed by the standard WordNet 3.x database files
// (index.noun and data.noun). Only noun synsets and hypernym pointers are
// loaded; that is all the membership walk needs.
type WordNet struct {
	index   map[string][]string // lemma -> synset offsets, sense order
	synsets map[string]*Synset  // offset -> synset
}

// LoadWordNet parses index.noun and data.noun from dir (the WordNet "dict"
// directory).
func LoadWordNet(dir string) (*WordNet, error) {
	wn := &WordNet{
		index:   make(map[string][]string),
		synsets: make(map[string]*Synset),
	}

	hypernyms := make(map[string][]string) // offset -> hypernym offsets
	dataPath := filepath.Join(dir, "data.noun")
	if err := eachLine(dataPath, func(line string) error {
		return wn.parseDataLine(line, hypernyms)
	}); err != nil {
		return nil, err
	}

	// Link pointers only after every synset exists.
	for offset, targets := range hypernyms {
		syn := wn.synsets[offset]
		for _, t := range targets {
			if h, ok := wn.synsets[t]; ok {
				syn.Hypernyms = append(syn.Hypernyms, h)
			}
		}
	}

	indexPath := filepath.Join(dir, "index.noun")
	if err := eachLine(indexPath, wn.parseIndexLine); err != nil {
		return nil, err
	}

	return wn, nil
}

// NounSynsets returns the word's noun senses in index order. Multi-word
// lemmas use underscores in the database; spaces in the query are normalized.
func (wn *WordNet) NounSynsets(word string) []*Synset {
	lemma := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
	offsets := wn.index[lemma]
	synsets := make([]*Synset, 0, len(offsets))
	for _, off := range offsets {
		if syn, ok := wn.synsets[off]; ok {
			synsets = append(synsets, syn)
		}
	}
	return synsets
}

// data.noun line:
//
//	offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] | gloss
//
// w_cnt is hexadecimal, p_cnt decimal. Pointer: symbol offset pos source_target.
// Hypernym symbols are "@" (direct) and "@i" (instance).
func (wn *WordNet) parseDataLine(line string, hypernyms map[string][]string) error {
	if before, _, found := strings.Cut(line, " | "); found {
		line = before
	}
	f := strings.Fields(line)
	if len(f) < 5 {
		return fmt.Errorf("short data.noun line: %q", line)
	}
	offset := f[0]
	wcnt, err := strconv.ParseInt(f[3], 16, 32)
	if err != nil {
		return fmt.Errorf("bad word count in synset %s: %w", offset, err)
	}

	syn := &Synset{}
	pos := 4
	for i := int64(0); i < wcnt; i++ {
		if pos >= len(f) {
			return fmt.Errorf("truncated word list in synset %s", offset)
		}
		syn.Words = append(syn.Words, strings.ToLower(strings.ReplaceAll(f[pos], "_", " ")))
		pos += 2 // skip lex_id
	}

	if pos >= len(f) {
		return fmt.Errorf("missing pointer count in synset %s", offset)
	}
	pcnt, err := strconv.Atoi(f[pos])
	if err != nil {
		return fmt.Errorf("bad pointer count in synset %s: %w", offset, err)
	}
	pos++
	for i := 0; i < pcnt; i++ {
		if pos+3 >= len(f) {
			return fmt.Errorf("truncated pointer list in synset %s", offset)
		}
		symbol, target, targetPOS := f[pos], f[pos+1], f[pos+2]
		if targetPOS == "n" && (symbol == "@" || symbol == "@i") {
			hypernyms[offset] = append(hypernyms[offset], target)
		}
		pos += 4
	}

	wn.synsets[offset] = syn
	return nil
}

// index.noun line:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt offset [offset...]
//
// The offsets are the trailing synset_cnt fields, ordered by sense frequency.
func (wn *WordNet) parseIndexLine(line string) error {
	f := strings.Fields(line)
	if len(f) < 5 {
		return fmt.Errorf("short index.noun line: %q", line)
	}
	lemma := f[0]
	cnt, err := strconv.Atoi(f[2])
	if err != nil {
		return fmt.Errorf("bad synset count for %q: %w", lemma, err)
	}
	if cnt <= 0 || len(f) < cnt {
		return fmt.Errorf("synset count %d does not fit index.noun line %q", cnt, lemma)
	}
	wn.index[lemma] = append([]string(nil), f[len(f)-cnt:]...)
	return nil
}

// eachLine streams non-header lines (the license preamble is indented with
// spaces) through fn.
func eachLine(path string, fn func(string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return nil
}
