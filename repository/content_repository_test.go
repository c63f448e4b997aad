package repository

import (
	"testing"

	"rtnsite/models"

	"github.com/stretchr/testify/assert"
)

func fixtureKnowledgeBase() *KnowledgeBaseCatalog {
	key := models.ArticleKey{Category: "seo", Slug: "keyword-research"}
	return &KnowledgeBaseCatalog{
		Categories: []models.Category{
			{ID: "seo", Title: "SEO & Content"},
			{ID: "web-design", Title: "Web Design"},
		},
		Articles: map[models.ArticleKey]models.Article{
			key: {Key: key, Title: "Keyword Research", Tags: []string{"seo"}},
		},
		Templates: map[string][]models.ArticleTemplate{
			"seo": {{Slug: "on-page-seo", Title: "On-Page SEO Checklist"}},
		},
	}
}

func TestContentRepository(t *testing.T) {
	repo := NewContentRepository(fixtureKnowledgeBase())

	t.Run("GetCategory returns nil for unknown ids without error", func(t *testing.T) {
		cat, err := repo.GetCategory("nope")
		assert.NoError(t, err)
		assert.Nil(t, cat)

		cat, err = repo.GetCategory("seo")
		assert.NoError(t, err)
		assert.NotNil(t, cat)
		assert.Equal(t, "SEO & Content", cat.Title)
	})

	t.Run("ListCategories preserves catalog order", func(t *testing.T) {
		categories, err := repo.ListCategories()
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		assert.Equal(t, "seo", categories[0].ID)
		assert.Equal(t, "web-design", categories[1].ID)
	})

	t.Run("GetArticle returns a copy the caller can mutate safely", func(t *testing.T) {
		key := models.ArticleKey{Category: "seo", Slug: "keyword-research"}

		first, err := repo.GetArticle(key)
		assert.NoError(t, err)
		assert.NotNil(t, first)

		first.HelpfulCount = 999
		first.Tags[0] = "mutated"

		second, err := repo.GetArticle(key)
		assert.NoError(t, err)
		assert.Equal(t, 0, second.HelpfulCount)
		assert.Equal(t, "seo", second.Tags[0])
	})

	t.Run("GetArticle returns nil for an unregistered key", func(t *testing.T) {
		article, err := repo.GetArticle(models.ArticleKey{Category: "seo", Slug: "absentee"})
		assert.NoError(t, err)
		assert.Nil(t, article)
	})

	t.Run("GetTemplates returns an empty slice for categories without templates", func(t *testing.T) {
		templates, err := repo.GetTemplates("web-design")
		assert.NoError(t, err)
		assert.NotNil(t, templates)
		assert.Empty(t, templates)
	})
}

func TestResourceRepository(t *testing.T) {
	catalog := &ResourceCatalog{
		ResourceCategories: []string{"seo", "design"},
		ResourceTypes:      []string{"guide", "toolkit"},
		Resources: []models.Resource{
			{ID: "r1", Title: "SEO Guide", Category: "seo", Type: "guide"},
			{ID: "r2", Title: "Design Kit", Category: "design", Type: "toolkit"},
		},
		FAQs: []models.FAQItem{
			{ID: "f1", Question: "Q", Answer: "A", Category: "billing"},
		},
	}
	repo := NewResourceRepository(catalog)

	t.Run("ListResources preserves order and isolates the catalog", func(t *testing.T) {
		resources, err := repo.ListResources()
		assert.NoError(t, err)
		assert.Len(t, resources, 2)
		assert.Equal(t, "r1", resources[0].ID)

		resources[0].ID = "mutated"
		again, err := repo.ListResources()
		assert.NoError(t, err)
		assert.Equal(t, "r1", again[0].ID)
	})

	t.Run("Facet value sets are exposed for the UI dropdowns", func(t *testing.T) {
		assert.Equal(t, []string{"seo", "design"}, repo.ResourceCategories())
		assert.Equal(t, []string{"guide", "toolkit"}, repo.ResourceTypes())
	})

	t.Run("ListFAQs returns the FAQ catalog", func(t *testing.T) {
		faqs, err := repo.ListFAQs()
		assert.NoError(t, err)
		assert.Len(t, faqs, 1)
	})
}
