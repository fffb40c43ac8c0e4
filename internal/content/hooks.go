package content

import (
	"context"
	"regexp"
	"strings"

	"github.com/fieldpress/fieldpress/internal/schema"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
var slugDashRuns = regexp.MustCompile(`-{2,}`)

// NormalizeSlug is the save hook of every built-in slug field: it lowercases
// the value, trims whitespace, and collapses anything outside [a-z0-9-] into
// single dashes, so "  My First Post! " becomes "my-first-post".
func NormalizeSlug(_ context.Context, _ schema.Values, value any) (any, error) {
	s, _ := value.(string)
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-"), nil
}

// ExcerptFromBody derives a short plain-text excerpt from the owning
// article's body blocks: the first rich-text block's content, truncated at a
// word boundary. An excerpt the editor stored explicitly is returned as is.
func ExcerptFromBody(_ context.Context, owner schema.Values) (any, error) {
	const maxLen = 200

	if stored, _ := owner["excerpt"].(string); strings.TrimSpace(stored) != "" {
		return stored, nil
	}

	blocks, err := schema.DecodeBlocks(owner["body"])
	if err != nil {
		return "", nil
	}

	for _, b := range blocks {
		if b.Type != "rich-text" {
			continue
		}
		content, _ := b.Data["content"].(string)
		content = strings.TrimSpace(stripTags(content))
		if content == "" {
			continue
		}
		if len(content) <= maxLen {
			return content, nil
		}
		cut := content[:maxLen]
		if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
			cut = cut[:idx]
		}
		return cut + "…", nil
	}

	return "", nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
