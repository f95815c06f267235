package sanitize_test

import (
	"strings"
	"testing"

	"github.com/volunhub/volunhub/internal/app/system/sanitize"
)

func TestText_Plain(t *testing.T) {
	if got := sanitize.Text("Beach Cleanup 2026"); got != "Beach Cleanup 2026" {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestText_StripsAllMarkup(t *testing.T) {
	got := sanitize.Text(`<b>Cleanup</b><script>alert('x')</script>`)
	if strings.Contains(got, "<") {
		t.Errorf("markup survived: %q", got)
	}
	if !strings.Contains(got, "Cleanup") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestDescription_KeepsFormatting(t *testing.T) {
	in := "<p><strong>Weekly</strong> shoreline cleanup</p>"
	got := sanitize.Description(in)
	if got != in {
		t.Errorf("safe formatting not preserved: %q", got)
	}
}

func TestDescription_RemovesScript(t *testing.T) {
	got := sanitize.Description("<p>Hello</p><script>alert('xss')</script>")
	if strings.Contains(got, "script") {
		t.Errorf("script survived: %q", got)
	}
}

func TestDescription_RemovesEventHandlers(t *testing.T) {
	in := `<p onclick="alert('xss')">Join us</p>`
	got := sanitize.Description(in)
	if strings.Contains(got, "onclick") {
		t.Errorf("onclick survived: %q", got)
	}
}

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
