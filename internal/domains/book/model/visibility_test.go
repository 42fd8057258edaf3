package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityFor(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	staff := VisibilityFor(true, now)
	assert.True(t, staff.All)
	assert.False(t, staff.Hides(2100))

	reader := VisibilityFor(false, now)
	assert.False(t, reader.All)
	assert.Equal(t, 2026, reader.MaxYear)
	assert.False(t, reader.Hides(2026))
	assert.False(t, reader.Hides(1869))
	assert.True(t, reader.Hides(2027))
}

func TestParseSearchTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"single term", "tolstoy", []string{"tolstoy"}},
		{"comma separated", "war,peace", []string{"war", "peace"}},
		{"whitespace separated", "war peace", []string{"war", "peace"}},
		{"mixed separators", "war, peace\tleo", []string{"war", "peace", "leo"}},
		{"consecutive separators dropped", ",,war,,  peace,", []string{"war", "peace"}},
		{"only separators", " , ,\t", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSearchTerms(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
