package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mononotes/mononotes/internal/domain/entity"
)

func TestEncodeFixedFieldOrder(t *testing.T) {
	raw := Encode(entity.Post{
		Title:     "Hello World",
		Excerpt:   "A greeting.",
		Date:      "2026-01-02",
		UpdatedAt: "2026-01-03",
		Tags:      []string{"go", "notes"},
		Cover:     "/images/cover.png",
		Content:   "  Body text.  ",
	})

	expected := strings.Join([]string{
		`---`,
		`title: "Hello World"`,
		`excerpt: "A greeting."`,
		`date: "2026-01-02"`,
		`updatedAt: "2026-01-03"`,
		`tags:`,
		`  - go`,
		`  - notes`,
		`cover: "/images/cover.png"`,
		`---`,
		``,
		`Body text.`,
		``,
	}, "\n")
	assert.Equal(t, expected, raw)
}

func TestEncodeEmptyTagsRendersPlaceholder(t *testing.T) {
	raw := Encode(entity.Post{
		Title:   "No Tags",
		Date:    "2026-01-02",
		Tags:    []string{},
		Content: "Body.",
	})
	assert.Contains(t, raw, "tags:\n  - "+PlaceholderTag)
	assert.NotContains(t, raw, "tags:\n---")
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	posts := []entity.Post{
		{
			Title:     "Hello World",
			Excerpt:   "A greeting.",
			Date:      "2026-01-02",
			UpdatedAt: "2026-01-03",
			Tags:      []string{"go", "notes"},
			Cover:     "/images/cover.png",
			Content:   "Body text.\n\n## Section\n\nMore.",
		},
		{
			Title:   "Bare Minimum",
			Date:    "2025-12-31",
			Tags:    []string{},
			Content: "Just a body.",
		},
	}

	for _, post := range posts {
		fm, body := Decode(Encode(post))
		assert.Equal(t, post.Title, fm.Title)
		assert.Equal(t, post.Excerpt, fm.Excerpt)
		assert.Equal(t, post.Date, fm.Date)
		assert.Equal(t, post.UpdatedAt, fm.UpdatedAt)
		assert.ElementsMatch(t, post.Tags, fm.Tags)
		assert.Equal(t, post.Cover, fm.Cover)
		assert.Equal(t, strings.TrimSpace(post.Content), body)
	}
}

func TestDecodeMalformedMetadataFallsBackToDefaults(t *testing.T) {
	fm, body := Decode("---\ntitle: [unclosed\n---\n\nStill readable.")
	assert.Equal(t, "", fm.Title)
	assert.Equal(t, "", fm.Excerpt)
	assert.Equal(t, time.Now().Format("2006-01-02"), fm.Date)
	assert.Empty(t, fm.Tags)
	assert.Equal(t, "Still readable.", body)
}

func TestDecodeWithoutFrontmatterIsAllBody(t *testing.T) {
	fm, body := Decode("# Just Markdown\n\nNo metadata block here.")
	assert.Equal(t, "", fm.Title)
	assert.Equal(t, "# Just Markdown\n\nNo metadata block here.", body)
	assert.NotEmpty(t, fm.Date)
}

func TestDecodeIgnoresNonStringFields(t *testing.T) {
	raw := "---\ntitle: 42\ntags: not-a-list\ncover: [a, b]\n---\n\nBody."
	fm, body := Decode(raw)
	assert.Equal(t, "", fm.Title)
	assert.Empty(t, fm.Tags)
	assert.Equal(t, "", fm.Cover)
	assert.Equal(t, "Body.", body)
}

func TestToPostDefaultsTitleToSlug(t *testing.T) {
	post := ToPost("my-post.md", "---\nexcerpt: \"e\"\ndate: \"2026-01-02\"\n---\n\nBody.")
	assert.Equal(t, "my-post", post.Slug)
	assert.Equal(t, "my-post", post.Title)
	assert.Equal(t, "my-post.md", post.FileName)
	assert.Equal(t, "Body.", post.Content)
}

func TestExtractTOC(t *testing.T) {
	body := "intro\n\n## First Section\n\ntext\n\n### Sub Section\n\n#### too deep\n\n## 中文 标题"
	toc := ExtractTOC(body)

	assert.Len(t, toc, 3)
	assert.Equal(t, entity.TocItem{ID: "first-section", Text: "First Section", Level: 2}, toc[0])
	assert.Equal(t, entity.TocItem{ID: "sub-section", Text: "Sub Section", Level: 3}, toc[1])
	assert.Equal(t, entity.TocItem{ID: "中文-标题", Text: "中文 标题", Level: 2}, toc[2])
}
