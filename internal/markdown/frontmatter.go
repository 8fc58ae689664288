package markdown

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/utils"
)

// PlaceholderTag is written in place of an empty tag list so downstream
// parsers never see a zero-length collection where one field is expected.
const PlaceholderTag = "uncategorized"

const dateLayout = "2006-01-02"

// Frontmatter is the typed metadata block at the head of a content file.
type Frontmatter struct {
	Title     string
	Excerpt   string
	Date      string
	UpdatedAt string
	Tags      []string
	Cover     string
}

// splitFrontmatter separates the leading delimited metadata block from the
// body. A file without a well-formed block is all body.
func splitFrontmatter(raw string) (string, string, bool) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return "", normalized, false
	}
	rest := normalized[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", normalized, false
	}
	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")
	return rest[:end], body, true
}

// Decode parses a raw content file into metadata and trimmed body. It is
// total: malformed or missing metadata fields fall back to per-field
// defaults instead of failing. A lone placeholder tag decodes back to an
// empty tag set so Encode/Decode round-trips.
func Decode(raw string) (Frontmatter, string) {
	meta, body, ok := splitFrontmatter(raw)

	fm := Frontmatter{Tags: []string{}}
	if ok {
		var data map[string]interface{}
		if err := yaml.Unmarshal([]byte(meta), &data); err == nil {
			fm.Title = stringField(data, "title")
			fm.Excerpt = stringField(data, "excerpt")
			fm.Date = stringField(data, "date")
			fm.UpdatedAt = stringField(data, "updatedAt")
			fm.Cover = stringField(data, "cover")
			fm.Tags = stringSliceField(data, "tags")
		}
	}

	if strings.TrimSpace(fm.Date) == "" {
		fm.Date = time.Now().Format(dateLayout)
	}
	if len(fm.Tags) == 1 && fm.Tags[0] == PlaceholderTag {
		fm.Tags = []string{}
	}
	return fm, strings.TrimSpace(body)
}

// Encode serializes a post back into the canonical file format: a metadata
// block with fields in fixed order, a blank line, the trimmed body and a
// trailing newline.
func Encode(post entity.Post) string {
	lines := []string{
		"---",
		"title: " + strconv.Quote(post.Title),
		"excerpt: " + strconv.Quote(post.Excerpt),
		"date: " + strconv.Quote(post.Date),
	}

	if strings.TrimSpace(post.UpdatedAt) != "" {
		lines = append(lines, "updatedAt: "+strconv.Quote(post.UpdatedAt))
	}

	lines = append(lines, "tags:")
	tags := make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		if strings.TrimSpace(tag) != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		lines = append(lines, "  - "+PlaceholderTag)
	} else {
		for _, tag := range tags {
			lines = append(lines, "  - "+tag)
		}
	}

	if strings.TrimSpace(post.Cover) != "" {
		lines = append(lines, "cover: "+strconv.Quote(post.Cover))
	}

	lines = append(lines, "---", "", strings.TrimSpace(post.Content), "")
	return strings.Join(lines, "\n")
}

// ToPost decodes a raw content file into a Post, deriving the slug from the
// file name and defaulting an absent title to the slug.
func ToPost(fileName, raw string) entity.Post {
	slug := utils.SlugFromFileName(fileName)
	fm, body := Decode(raw)

	title := fm.Title
	if strings.TrimSpace(title) == "" {
		title = slug
	}

	return entity.Post{
		Slug:      slug,
		Title:     title,
		Excerpt:   fm.Excerpt,
		Date:      fm.Date,
		UpdatedAt: fm.UpdatedAt,
		Tags:      fm.Tags,
		Cover:     fm.Cover,
		Content:   body,
		FileName:  fileName,
	}
}

func stringField(data map[string]interface{}, key string) string {
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}

func stringSliceField(data map[string]interface{}, key string) []string {
	raw, ok := data[key].([]interface{})
	if !ok {
		return []string{}
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			values = append(values, s)
		}
	}
	return values
}
