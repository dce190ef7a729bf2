package ocr

import "testing"

func TestImageMIMEType(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"sheet.png", "image/png"},
		{"sheet.PNG", "image/png"},
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"scan.webp", "image/webp"},
		{"anim.gif", "image/gif"},
		{"noext", "image/png"},
	}
	for _, tc := range cases {
		if got := imageMIMEType(tc.path); got != tc.want {
			t.Errorf("imageMIMEType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestNewGenAIEngineRequiresKey(t *testing.T) {
	if _, err := NewGenAIEngine("", ""); err == nil {
		t.Fatal("expected error without an API key")
	}
}
