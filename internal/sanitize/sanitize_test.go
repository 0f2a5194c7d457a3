package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Juicy Burger", "juicy-burger"},
		{"punctuation stripped", "Spicy Thai Curry!", "spicy-thai-curry"},
		{"whitespace collapsed", "  Homemade   Pizza  ", "homemade-pizza"},
		{"mixed case", "Schnitzel MIT Pommes", "schnitzel-mit-pommes"},
		{"numbers kept", "5 Minute Noodles", "5-minute-noodles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestSlugDeterministic(t *testing.T) {
	titles := []string{"Spicy Thai Curry!", "Tomato & Basil Soup", "Crème Brûlée"}
	for _, title := range titles {
		first := Slug(title)
		second := Slug(title)
		assert.Equal(t, first, second, "slug must be deterministic for %q", title)
		assert.NotContains(t, first, " ")
		for _, r := range first {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "slug %q contains unsafe character %q", first, r)
		}
	}
}

func TestSlugEmptyTitleFallsBack(t *testing.T) {
	s := Slug("")
	assert.True(t, strings.HasPrefix(s, "meal-"), "empty title should produce a generated token, got %q", s)
	assert.Greater(t, len(s), len("meal-"))

	// All-symbol titles also have no slug material to work with.
	s = Slug("!!! ???")
	assert.True(t, strings.HasPrefix(s, "meal-"))
}

func TestHTMLRemovesScripts(t *testing.T) {
	in := `Step 1<script>alert("pwned")</script> mix well`
	out := HTML(in)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "mix well")
}

func TestHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"plain text, no markup",
		"Step 1\nStep 2",
		`<b>bold</b> and <script>evil()</script>`,
		`<img src="x" onerror="alert(1)">chop the onions`,
		"salt & pepper",
	}
	for _, in := range inputs {
		once := HTML(in)
		twice := HTML(once)
		assert.Equal(t, once, twice, "sanitizing twice must equal sanitizing once for %q", in)
	}
}

func TestHTMLPreservesNewlines(t *testing.T) {
	out := HTML("Step 1\nStep 2")
	assert.Contains(t, out, "\n", "newlines must survive sanitization for the renderer to turn into <br />")
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "Step 2")
}
