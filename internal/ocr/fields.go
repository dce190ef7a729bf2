package ocr

import (
	"regexp"
	"strings"
)

// Fields are the values recoverable from a photographed score sheet. An empty
// string means the pattern found nothing; each field is independently
// optional.
type Fields struct {
	Nickname string
	Digits   string
	GameName string
	Score    string
	Date     string
	Agent    string
}

// fieldPatterns is the declarative extraction table: one case-insensitive
// pattern per field, first match anywhere in the text wins, none anchored to
// line boundaries.
var fieldPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"nickname", regexp.MustCompile(`(?i)Nickname:\s*(\w+)`)},
	{"digits", regexp.MustCompile(`(?i)Last 4 digits.*?:\s*(\d{4})`)},
	{"game_name", regexp.MustCompile(`(?i)Game name:\s*(.+)`)},
	{"score", regexp.MustCompile(`(?i)Score:\s*(\d+)`)},
	{"date", regexp.MustCompile(`(?i)Date:\s*(\d+)`)},
	{"agent", regexp.MustCompile(`(?i)Agent:\s*(\w+)`)},
}

// ExtractFields applies the extraction table to OCR'd text.
func ExtractFields(text string) Fields {
	var fields Fields
	for _, p := range fieldPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		switch p.name {
		case "nickname":
			fields.Nickname = value
		case "digits":
			fields.Digits = value
		case "game_name":
			fields.GameName = value
		case "score":
			fields.Score = value
		case "date":
			fields.Date = value
		case "agent":
			fields.Agent = value
		}
	}
	return fields
}
