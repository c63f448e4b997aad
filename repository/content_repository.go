package repository

import (
	"log"
	"sync"

	"rtnsite/models"
)

// ContentRepository is the read interface over the knowledge-base catalog.
type ContentRepository interface {
	GetCategory(id string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	GetArticle(key models.ArticleKey) (*models.Article, error)
	GetTemplates(categoryID string) ([]models.ArticleTemplate, error)
}

// contentRepository serves the immutable knowledge-base catalog from memory.
// The catalog is injected at construction so tests can supply fixtures.
type contentRepository struct {
	categories map[string]models.Category
	ordered    []models.Category // preserves catalog file order for listing
	articles   map[models.ArticleKey]models.Article
	templates  map[string][]models.ArticleTemplate
	mu         sync.RWMutex
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(catalog *KnowledgeBaseCatalog) ContentRepository {
	repo := &contentRepository{
		categories: make(map[string]models.Category, len(catalog.Categories)),
		ordered:    make([]models.Category, len(catalog.Categories)),
		articles:   make(map[models.ArticleKey]models.Article, len(catalog.Articles)),
		templates:  make(map[string][]models.ArticleTemplate, len(catalog.Templates)),
	}
	copy(repo.ordered, catalog.Categories)
	for _, cat := range catalog.Categories {
		repo.categories[cat.ID] = cat
	}
	for key, article := range catalog.Articles {
		repo.articles[key] = article
	}
	for categoryID, templates := range catalog.Templates {
		repo.templates[categoryID] = templates
	}
	log.Printf("INFO: [ContentRepository] Loaded %d categories, %d articles, %d template lists.",
		len(repo.categories), len(repo.articles), len(repo.templates))
	return repo
}

// GetCategory returns the category with the given id, or (nil, nil) when it
// is not registered. Absence is a lookup result, not an error.
func (r *contentRepository) GetCategory(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, exists := r.categories[id]
	if !exists {
		return nil, nil
	}
	return &cat, nil
}

// ListCategories returns all categories in catalog order.
func (r *contentRepository) ListCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copies keep callers from mutating the internal store.
	result := make([]models.Category, len(r.ordered))
	copy(result, r.ordered)
	return result, nil
}

// GetArticle returns the explicit article record for the key, or (nil, nil)
// when no explicit record exists (tier 2/3 resolution is the service's job).
func (r *contentRepository) GetArticle(key models.ArticleKey) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, exists := r.articles[key]
	if !exists {
		return nil, nil
	}
	// Copy so callers mutating counts never touch the catalog.
	articleCopy := article
	articleCopy.Tags = append([]string(nil), article.Tags...)
	articleCopy.RelatedArticles = append([]models.RelatedArticle(nil), article.RelatedArticles...)
	return &articleCopy, nil
}

// GetTemplates returns the template list registered for the category, in
// catalog order. An empty slice means the category has no templates.
func (r *contentRepository) GetTemplates(categoryID string) ([]models.ArticleTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates, exists := r.templates[categoryID]
	if !exists || len(templates) == 0 {
		return []models.ArticleTemplate{}, nil
	}
	result := make([]models.ArticleTemplate, len(templates))
	copy(result, templates)
	return result, nil
}
