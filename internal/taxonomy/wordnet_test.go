package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

const testDataNoun = `  1 This software and database is being provided to you, the LICENSEE.
  2 Lines of the license preamble are indented and must be skipped.
00000001 05 n 01 dog 0 001 @ 00000002 n 0000 | a domesticated carnivore
00000002 05 n 02 animal 0 animate_being 0 000 | a living organism
00000003 06 n 01 car 0 001 @ 00000004 n 0000 | a motor vehicle
00000004 06 n 01 artifact 0 000 | a man-made object
00000005 05 n 01 bulldog 0 001 @i 00000001 n 0000 | a breed of dog
`

const testIndexNoun = `  1 This software and database is being provided to you, the LICENSEE.
dog n 1 1 @ 1 0 00000001
car n 1 1 @ 1 0 00000003
animal n 1 1 ~ 1 0 00000002
bulldog n 1 1 @ 1 0 00000005
animate_being n 1 1 ~ 1 0 00000002
robot n 3 1 @ 3 0 00000003 00000004 00000001
`

func writeWordNetFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.noun"), []byte(testDataNoun), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.noun"), []byte(testIndexNoun), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadWordNet(t *testing.T) {
	wn, err := LoadWordNet(writeWordNetFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	senses := wn.NounSynsets("dog")
	if len(senses) != 1 {
		t.Fatalf("dog senses = %d, want 1", len(senses))
	}
	if len(senses[0].Words) != 1 || senses[0].Words[0] != "dog" {
		t.Fatalf("dog lemmas = %v", senses[0].Words)
	}
	if len(senses[0].Hypernyms) != 1 {
		t.Fatalf("dog hypernyms = %d, want 1", len(senses[0].Hypernyms))
	}
	if got := senses[0].Hypernyms[0].Words; len(got) != 2 || got[0] != "animal" || got[1] != "animate being" {
		t.Fatalf("hypernym lemmas = %v, want [animal, animate being]", got)
	}
}

func TestLoadWordNetMembership(t *testing.T) {
	wn, err := LoadWordNet(writeWordNetFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		word, category string
		want           bool
	}{
		{"dog", "animal", true},
		{"car", "animal", false},
		{"car", "artifact", true},
		{"bulldog", "animal", true}, // "@i" instance hypernym chains through dog
		{"robot", "animal", false},  // the animal sense is past the sense limit
		{"animate being", "animal", true},
	}
	for _, tc := range cases {
		if got := IsMember(wn, tc.word, tc.category); got != tc.want {
			t.Errorf("IsMember(%q, %q) = %v, want %v", tc.word, tc.category, got, tc.want)
		}
	}
}

func TestNounSynsetsUnknownWord(t *testing.T) {
	wn, err := LoadWordNet(writeWordNetFixture(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if senses := wn.NounSynsets("unicorn"); len(senses) != 0 {
		t.Fatalf("unknown word returned %d senses", len(senses))
	}
}

func TestLoadWordNetMissingDir(t *testing.T) {
	if _, err := LoadWordNet(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing database directory")
	}
}
