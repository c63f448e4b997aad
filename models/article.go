package models

import "fmt"

// ArticleKey identifies an article by category and slug. It is used as a map
// key directly (struct equality) instead of a concatenated "category/slug"
// string, so a category containing a slash can never collide with another
// key.
type ArticleKey struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

// String renders the key in its route form, e.g. "seo/keyword-research".
// Display/storage only; lookups always use the struct value.
func (k ArticleKey) String() string {
	return fmt.Sprintf("%s/%s", k.Category, k.Slug)
}

// RelatedArticle is a display link to another article. The path references
// articles by convention; referential integrity is not enforced.
type RelatedArticle struct {
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
}

// Article is a resolvable knowledge-base content record. Articles are
// immutable after catalog load except for the helpful/unhelpful counters,
// which the feedback service adjusts on the rendered copy.
type Article struct {
	Key             ArticleKey       `json:"key" yaml:"-"`
	Title           string           `json:"title" yaml:"title"`
	Description     string           `json:"description" yaml:"description"`
	Content         string           `json:"content" yaml:"content"`
	Tags            []string         `json:"tags" yaml:"tags"`
	Author          string           `json:"author" yaml:"author"`
	LastUpdated     string           `json:"lastUpdated" yaml:"last_updated"`
	ReadTime        string           `json:"readTime" yaml:"read_time"`
	Popular         bool             `json:"popular" yaml:"popular"`
	HelpfulCount    int              `json:"helpfulCount" yaml:"helpful_count"`
	UnhelpfulCount  int              `json:"unhelpfulCount" yaml:"unhelpful_count"`
	RelatedArticles []RelatedArticle `json:"relatedArticles" yaml:"related_articles"`
}

// ArticleTemplate describes a per-category article stub. The resolver merges
// template fields into the default content skeleton when no explicit record
// exists for the slug.
type ArticleTemplate struct {
	Slug        string `json:"slug" yaml:"slug"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ReadTime    string `json:"readTime" yaml:"read_time"`
	LastUpdated string `json:"lastUpdated" yaml:"last_updated"`
	Popular     bool   `json:"popular" yaml:"popular"`
}

// Heading is a table-of-contents entry derived from an article's content.
// It is never persisted; the extractor recomputes it per request.
type Heading struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"` // 2 or 3
}
