package lang

import "testing"

func TestCatalog(t *testing.T) {
	catalog := NewCatalog(map[string]Codes{
		"English": {STT: "en-IN", GTTS: "en"},
		"hindi":   {STT: "hi-IN", GTTS: "hi"},
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		codes, ok := catalog.Codes("ENGLISH")
		if !ok {
			t.Fatal("english should be supported")
		}
		if codes.STT != "en-IN" || codes.GTTS != "en" {
			t.Errorf("unexpected codes: %+v", codes)
		}
	})

	t.Run("unknown language", func(t *testing.T) {
		if catalog.Supported("klingon") {
			t.Error("klingon should not be supported")
		}
	})

	t.Run("names sorted", func(t *testing.T) {
		names := catalog.Names()
		if len(names) != 2 || names[0] != "english" || names[1] != "hindi" {
			t.Errorf("unexpected names: %v", names)
		}
	})
}

func TestPhrase(t *testing.T) {
	t.Run("translated language", func(t *testing.T) {
		got := Phrase(PhraseYes, "hindi")
		if got != "जी बताइए?" {
			t.Errorf("unexpected hindi phrase: %q", got)
		}
	})

	t.Run("falls back to english", func(t *testing.T) {
		got := Phrase(PhraseUnknown, "spanish")
		if got != Phrase(PhraseUnknown, "english") {
			t.Errorf("expected english fallback, got %q", got)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		if got := Phrase(PhraseKey("nonsense"), "english"); got != "" {
			t.Errorf("expected empty phrase, got %q", got)
		}
	})
}

func TestNameForISOCode(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"EN", "english"},
		{"hi", "hindi"},
		{"mr", "marathi"},
		{"zh-CN", "chinese"},
		{"kn", "kannada"},
		{"xx", "english"}, // outside the closed list
		{"", "english"},
	}
	for _, c := range cases {
		if got := nameForISOCode(c.code); got != c.want {
			t.Errorf("nameForISOCode(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestDetect(t *testing.T) {
	d := NewDetector()

	t.Run("empty text defaults", func(t *testing.T) {
		if got := d.Detect("   "); got != DefaultLanguage {
			t.Errorf("empty text: got %q", got)
		}
	})

	t.Run("plain english", func(t *testing.T) {
		if got := d.Detect("hello there, how are you doing today my friend"); got != "english" {
			t.Errorf("english text: got %q", got)
		}
	})
}
