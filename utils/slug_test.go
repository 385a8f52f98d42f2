package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"My First Post", "my-first-post"},
		{"Café Olé", "cafe-ole"},
		{"Go, Go, Go!", "go-go-go"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	slug := Slugify("Hello World")
	assert.Equal(t, slug, Slugify(slug))
}

func TestSlugifyIsDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Hello World"), Slugify("Hello World"))
}
