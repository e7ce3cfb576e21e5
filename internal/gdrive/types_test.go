package gdrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeQueryTerm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text",
			input: "quarterly report",
			want:  "quarterly report",
		},
		{
			name:  "single quote",
			input: "O'Brien",
			want:  `O\'Brien`,
		},
		{
			name:  "backslash",
			input: `path\to`,
			want:  `path\\to`,
		},
		{
			name:  "backslash before quote",
			input: `it\'s`,
			want:  `it\\\'s`,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeQueryTerm(tt.input))
		})
	}
}
