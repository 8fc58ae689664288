package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdown(t *testing.T) {
	input := "# Title\n\nSome `inline` text with a [link](https://example.com) and\n\n```go\nfmt.Println(\"code\")\n```\n\n![alt](image.png)\n\n- item one"
	stripped := StripMarkdown(input)

	assert.NotContains(t, stripped, "`")
	assert.NotContains(t, stripped, "](")
	assert.NotContains(t, stripped, "#")
	assert.Contains(t, stripped, "Title")
	assert.Contains(t, stripped, "text with a link and")
	assert.NotContains(t, stripped, "fmt.Println")
}

func TestEstimateReadingTime(t *testing.T) {
	assert.Equal(t, "1 min read", EstimateReadingTime("a few words only"))
	assert.Equal(t, "1 min read", EstimateReadingTime(""))

	long := ""
	for i := 0; i < 500; i++ {
		long += "word "
	}
	assert.Equal(t, "3 min read", EstimateReadingTime(long))
}

func TestIsLikelyMarkdown(t *testing.T) {
	assert.True(t, IsLikelyMarkdown("# A heading\n\nbody"))
	assert.True(t, IsLikelyMarkdown("intro\n\n- a list\n- of things"))
	assert.True(t, IsLikelyMarkdown("see [docs](https://example.com) for more"))
	assert.False(t, IsLikelyMarkdown("short"))
	assert.False(t, IsLikelyMarkdown("just a plain sentence without structure"))
}
