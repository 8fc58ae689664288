package markdown

import (
	"regexp"
	"strings"

	"github.com/mononotes/mononotes/internal/domain/entity"
	"github.com/mononotes/mononotes/internal/utils"
)

var headingLine = regexp.MustCompile(`^(##|###)\s+(.+)$`)

// ExtractTOC collects the level-2 and level-3 headings of a post body, with
// slugified ids matching the anchors the renderer emits.
func ExtractTOC(body string) []entity.TocItem {
	toc := []entity.TocItem{}
	for _, line := range strings.Split(body, "\n") {
		match := headingLine.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		text := strings.TrimSpace(match[2])
		if text == "" {
			continue
		}
		level := 2
		if match[1] == "###" {
			level = 3
		}
		toc = append(toc, entity.TocItem{
			ID:    utils.Slugify(text),
			Text:  text,
			Level: level,
		})
	}
	return toc
}
