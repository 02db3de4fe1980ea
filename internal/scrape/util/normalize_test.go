package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Senior DevOps Engineer", CleanText("  Senior \n DevOps  Engineer  "))
	assert.Equal(t, "", CleanText("   \n\t "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	// never split a multi-byte rune
	assert.Equal(t, "a", Truncate("aé", 2))
}
