package services

import (
	"fmt"
	"regexp"
	"strings"

	"rtnsite/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// headingPattern matches level-2 and level-3 heading markers in article
// content, with or without attributes on the open tag. Open and close tags
// must agree on level, so an unclosed <h2> cannot swallow a following <h3>
// section. A single pattern keeps extraction in one pass over the content,
// so interleaved H2/H3 headings come back in true document order rather than
// grouped by level.
var headingPattern = regexp.MustCompile(`(?s)<h2(?:\s[^>]*)?>(.*?)</h2>|<h3(?:\s[^>]*)?>(.*?)</h3>`)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// ContentService derives table-of-contents data from article content and
// rewrites the content so in-page anchors resolve.
type ContentService interface {
	ExtractHeadings(content string) []models.Heading
	FormatContent(content string) string
}

type contentService struct{}

// NewContentService creates a new instance of ContentService.
func NewContentService() ContentService {
	return &contentService{}
}

// ExtractHeadings scans content for H2/H3 markers in document order and
// returns one entry per match. Malformed or absent markup simply yields
// fewer (or zero) entries; it never fails.
func (s *contentService) ExtractHeadings(content string) []models.Heading {
	matches := headingPattern.FindAllStringSubmatch(content, -1)
	headings := make([]models.Heading, 0, len(matches))
	for _, match := range matches {
		level, inner := headingParts(match[0], match[1], match[2])
		headings = append(headings, models.Heading{
			ID:    DeriveHeadingID(inner),
			Title: strings.TrimSpace(inner),
			Level: level,
		})
	}
	return headings
}

// FormatContent returns a copy of content where every H2/H3 open tag carries
// an id attribute equal to what ExtractHeadings derives for the same heading
// text. Existing attributes on the open tag are discarded and the id
// re-derived, which makes the rewrite idempotent.
func (s *contentService) FormatContent(content string) string {
	return headingPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := headingPattern.FindStringSubmatch(match)
		level, inner := headingParts(sub[0], sub[1], sub[2])
		return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, DeriveHeadingID(inner), inner, level)
	})
}

// headingParts picks the level and inner text out of a heading match. The
// pattern's two alternatives capture into different groups, so the matched
// open tag decides which group holds the heading text (the group value alone
// cannot, since a heading may legitimately be empty).
func headingParts(match string, h2Inner string, h3Inner string) (int, string) {
	if strings.HasPrefix(match, "<h2") {
		return 2, h2Inner
	}
	return 3, h3Inner
}

// DeriveHeadingID derives the stable anchor id for a heading: lowercase,
// strip everything that is not a word character or whitespace, collapse
// whitespace runs to single hyphens. Pure and deterministic; two headings
// with identical text produce the same id.
func DeriveHeadingID(title string) string {
	id := strings.ToLower(title)
	id = nonWordPattern.ReplaceAllString(id, "")
	id = strings.TrimSpace(id)
	return whitespacePattern.ReplaceAllString(id, "-")
}

// Humanize turns a slug into display text: hyphens become spaces and each
// segment gets a leading capital ("two-factor-authentication" -> "Two Factor
// Authentication"). Not injective; collisions are acceptable for display
// text.
func Humanize(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
