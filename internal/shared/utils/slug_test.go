package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Building My Portfolio: Part 1!", "building-my-portfolio-part-1"},
		{"diacritics folded", "Résumé für Café", "resume-fur-cafe"},
		{"consecutive separators collapse", "a  --  b", "a-b"},
		{"leading and trailing trimmed", " -Hello- ", "hello"},
		{"already a slug", "hello-world", "hello-world"},
		{"empty input", "", ""},
		{"only special characters", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
