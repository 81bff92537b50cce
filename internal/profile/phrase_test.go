package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackerPhrase(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{-1, "no backers yet"},
		{0, "no backers yet"},
		{1, "one backer"},
		{2, "two backers"},
		{5, "five backers"},
		{9, "nine backers"},
		{10, "10 backers"},
		{1234, "1,234 backers"},
		{1000000, "1,000,000 backers"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BackerPhrase(tt.count), "count=%d", tt.count)
	}
}
