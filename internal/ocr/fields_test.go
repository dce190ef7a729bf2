package ocr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractFields(t *testing.T) {
	text := `Cognitive Training Score Sheet
Nickname: Jane
Last 4 digits of phone: 1234
Game name: Number Recall
Score: 85
Date: 20260115
Agent: caregiver1
`
	got := ExtractFields(text)
	want := Fields{
		Nickname: "Jane",
		Digits:   "1234",
		GameName: "Number Recall",
		Score:    "85",
		Date:     "20260115",
		Agent:    "caregiver1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFieldsCaseInsensitive(t *testing.T) {
	got := ExtractFields("NICKNAME: bob\nLAST 4 DIGITS: 9876\nscore: 40")
	if got.Nickname != "bob" || got.Digits != "9876" || got.Score != "40" {
		t.Fatalf("got %+v", got)
	}
}

func TestExtractFieldsMissingAreEmpty(t *testing.T) {
	got := ExtractFields("Nickname: solo")
	if got.Nickname != "solo" {
		t.Fatalf("nickname = %q", got.Nickname)
	}
	if got.Digits != "" || got.GameName != "" || got.Score != "" || got.Date != "" || got.Agent != "" {
		t.Fatalf("absent fields should stay empty: %+v", got)
	}
}

func TestExtractFieldsDigitsVariants(t *testing.T) {
	// The digits label varies between sheets; anything up to the colon goes.
	for _, text := range []string{
		"Last 4 digits: 1234",
		"Last 4 digits of phone number: 1234",
		"last 4 digits (phone): 1234",
	} {
		if got := ExtractFields(text).Digits; got != "1234" {
			t.Errorf("ExtractFields(%q).Digits = %q", text, got)
		}
	}
	// Fewer than four digits is not a match.
	if got := ExtractFields("Last 4 digits: 12").Digits; got != "" {
		t.Errorf("short digits matched: %q", got)
	}
}

func TestExtractFieldsNothingUseful(t *testing.T) {
	got := ExtractFields("OCR Error: could not read image")
	if got != (Fields{}) {
		t.Fatalf("got %+v, want zero fields", got)
	}
}
