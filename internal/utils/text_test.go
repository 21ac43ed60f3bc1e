package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello World!!", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"underscores collapse", "foo_bar__baz", "foo-bar-baz"},
		{"mixed separators", "Foo -_ Bar", "foo-bar"},
		{"leading and trailing noise", "  --Hello--  ", "hello"},
		{"numbers preserved", "Top 10 Tips", "top-10-tips"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello World!!", "Top 10 Tips", "foo_bar", "  spaced out  ", "technology"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify should be idempotent for %q", in)
	}
}

func TestSlugifyCanonicalForm(t *testing.T) {
	out := Slugify("C'est La Vie: Part #2!")
	assert.NotEmpty(t, out)
	assert.False(t, strings.HasPrefix(out, "-"))
	assert.False(t, strings.HasSuffix(out, "-"))
	for _, r := range out {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "unexpected rune %q in slug %q", r, out)
	}
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hi", StripHTML("<p>Hi</p>"))
	assert.Equal(t, "boldtext", StripHTML("<b>bold</b><i>text</i>"))
	assert.Equal(t, "plain", StripHTML("plain"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10c", Truncate("exactly10c", 10))

	long := strings.Repeat("word ", 50)
	out := Truncate(long, 20)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.LessOrEqual(t, len(out), 20+3)
}

func TestGenerateExcerpt(t *testing.T) {
	excerpt := GenerateExcerpt("<p>Hi</p>", 160)
	assert.Equal(t, "Hi", excerpt)

	content := "<p>" + strings.Repeat("lorem ipsum ", 40) + "</p>"
	excerpt = GenerateExcerpt(content, 160)
	assert.LessOrEqual(t, len(excerpt), 163)
	// The excerpt (minus the marker) is a prefix of the stripped source.
	trimmed := strings.TrimSuffix(excerpt, "...")
	assert.True(t, strings.HasPrefix(StripHTML(content), trimmed))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("<p>a few words only</p>"))

	long := "<p>" + strings.Repeat("word ", 450) + "</p>"
	assert.Equal(t, 3, ReadingTime(long))
}
