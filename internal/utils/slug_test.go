package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":            "hello-world",
		"  Trimmed   Title  ":    "trimmed-title",
		"Go 1.24 Release Notes!": "go-124-release-notes",
		"snake_case stays":       "snake_case-stays",
		"多个   空格":                "多个-空格",
		"中文标题 With English":      "中文标题-with-english",
		"---already--slugged--":  "-already-slugged-",
		"":                       "",
		"!!!":                    "",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Slugify(input), "input %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Go 1.24 Release Notes!",
		"中文标题 With English",
		"  lots   of\twhitespace ",
		"a-b--c",
	}
	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "input %q", input)
	}
}

func TestSlugifyCharset(t *testing.T) {
	allowed := regexp.MustCompile(`^[\w\p{Han}-]*$`)
	inputs := []string{
		"Hello, World?",
		"emails@example.com",
		"半角ｶﾅ and symbols ©®",
		"quotes \"and\" 'apostrophes'",
	}
	for _, input := range inputs {
		assert.Regexp(t, allowed, Slugify(input), "input %q", input)
	}
}

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "my-post", SanitizeSlug("  My Post  "))
	assert.Equal(t, "my-post", SanitizeSlug("My Post.md"))
	assert.Equal(t, "my-post", SanitizeSlug("my-post.mdx"))
	assert.Equal(t, "", SanitizeSlug("???"))
}

func TestSlugFromFileName(t *testing.T) {
	assert.Equal(t, "hello-world", SlugFromFileName("hello-world.md"))
	assert.Equal(t, "hello-world", SlugFromFileName("hello-world.mdx"))
	assert.Equal(t, "no-extension", SlugFromFileName("no-extension"))
}
