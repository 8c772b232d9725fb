package retrieval

import (
	"strings"
	"testing"
)

func TestMentionedTextFindsSentence(t *testing.T) {
	text := "Markets opened flat. AAPL rallied after earnings beat expectations. Bonds fell."
	got := MentionedText("AAPL", text, 512)
	if !strings.Contains(got, "rallied after earnings") {
		t.Fatalf("expected sentence around keyword, got %q", got)
	}
	if strings.Contains(got, "Bonds fell") {
		t.Fatalf("unrelated sentence must not be included, got %q", got)
	}
}

func TestMentionedTextStopsAtLimit(t *testing.T) {
	sentence := "one AAPL mention with plenty of surrounding words here. "
	text := strings.Repeat(sentence, 50)
	got := MentionedText("AAPL", text, 100)
	// one sentence past the limit at most
	if len(got) > 100+len(sentence) {
		t.Fatalf("output too long: %d", len(got))
	}
}

func TestMentionedTextEmpty(t *testing.T) {
	if got := MentionedText("AAPL", "no mention here.", 512); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := MentionedText("", "text.", 512); got != "" {
		t.Fatalf("empty keyword must yield empty, got %q", got)
	}
}
