package services

import (
	"errors"
	"testing"

	"rtnsite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContentRepository is a mock type for the ContentRepository interface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetCategory(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockContentRepository) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockContentRepository) GetArticle(key models.ArticleKey) (*models.Article, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockContentRepository) GetTemplates(categoryID string) ([]models.ArticleTemplate, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleTemplate), args.Error(1)
}

func TestArticleService_ResolveArticle(t *testing.T) {
	category := &models.Category{ID: "seo", Title: "SEO & Content"}
	explicitKey := models.ArticleKey{Category: "seo", Slug: "keyword-research"}
	explicit := &models.Article{
		Key:   explicitKey,
		Title: "Keyword Research: A Practical Walkthrough",
	}
	templates := []models.ArticleTemplate{
		{Slug: "on-page-seo", Title: "On-Page SEO Checklist", Description: "Everything on the page itself.", ReadTime: "7 min read", LastUpdated: "January 20, 2025", Popular: true},
		{Slug: "technical-seo-audit", Title: "Running a Technical SEO Audit", ReadTime: "12 min read"},
	}

	t.Run("Tier 1 returns the explicit record verbatim", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)

		mockRepo.On("GetCategory", "seo").Return(category, nil).Once()
		mockRepo.On("GetArticle", explicitKey).Return(explicit, nil).Once()

		article, err := service.ResolveArticle("seo", "keyword-research")

		assert.NoError(t, err)
		assert.Equal(t, explicit, article)
		mockRepo.AssertNotCalled(t, "GetTemplates", mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Tier 2 synthesizes from a matching template", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)
		key := models.ArticleKey{Category: "seo", Slug: "on-page-seo"}

		mockRepo.On("GetCategory", "seo").Return(category, nil).Once()
		mockRepo.On("GetArticle", key).Return(nil, nil).Once()
		mockRepo.On("GetTemplates", "seo").Return(templates, nil).Once()

		article, err := service.ResolveArticle("seo", "on-page-seo")

		assert.NoError(t, err)
		assert.NotNil(t, article)
		assert.Equal(t, "On-Page SEO Checklist", article.Title)
		assert.Equal(t, "Everything on the page itself.", article.Description)
		assert.Equal(t, "7 min read", article.ReadTime)
		assert.Equal(t, "January 20, 2025", article.LastUpdated)
		assert.True(t, article.Popular)
		assert.Equal(t, []string{"seo", "On Page Seo", "guide", "tutorial"}, article.Tags)
		assert.Contains(t, article.Content, "<h2>Introduction</h2>")
		assert.Contains(t, article.Content, "SEO & Content")
		// Related links come from the other templates of the category.
		assert.Len(t, article.RelatedArticles, 1)
		assert.Equal(t, "/knowledge-base/seo/technical-seo-audit", article.RelatedArticles[0].Path)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Tier 3 synthesizes a generic fallback for any slug", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)
		key := models.ArticleKey{Category: "seo", Slug: "slug3"}

		mockRepo.On("GetCategory", "seo").Return(category, nil).Once()
		mockRepo.On("GetArticle", key).Return(nil, nil).Once()
		mockRepo.On("GetTemplates", "seo").Return(templates, nil).Once()

		article, err := service.ResolveArticle("seo", "slug3")

		assert.NoError(t, err)
		assert.NotNil(t, article)
		assert.Equal(t, "Slug3", article.Title)
		assert.Contains(t, article.Description, "SEO & Content")
		for _, section := range []string{"Introduction", "Getting Started", "Key Concepts", "Step-by-Step Guide", "Best Practices", "Troubleshooting", "Advanced Topics"} {
			assert.Contains(t, article.Content, "<h2>"+section+"</h2>")
		}
		assert.GreaterOrEqual(t, article.HelpfulCount, 1)
		assert.GreaterOrEqual(t, article.UnhelpfulCount, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Synthesized vote counts are stable across resolutions", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)
		key := models.ArticleKey{Category: "seo", Slug: "anything-at-all"}

		mockRepo.On("GetCategory", "seo").Return(category, nil).Twice()
		mockRepo.On("GetArticle", key).Return(nil, nil).Twice()
		mockRepo.On("GetTemplates", "seo").Return([]models.ArticleTemplate{}, nil).Twice()

		first, err := service.ResolveArticle("seo", "anything-at-all")
		assert.NoError(t, err)
		second, err := service.ResolveArticle("seo", "anything-at-all")
		assert.NoError(t, err)

		assert.Equal(t, first.HelpfulCount, second.HelpfulCount)
		assert.Equal(t, first.UnhelpfulCount, second.UnhelpfulCount)
		assert.Equal(t, first.ReadTime, second.ReadTime)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category fails regardless of slug", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)

		mockRepo.On("GetCategory", "unknown-cat").Return(nil, nil).Once()

		article, err := service.ResolveArticle("unknown-cat", "x")

		assert.Nil(t, article)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		mockRepo.AssertNotCalled(t, "GetArticle", mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository failure is wrapped, not swallowed", func(t *testing.T) {
		mockRepo := new(MockContentRepository)
		service := NewArticleService(mockRepo)

		mockRepo.On("GetCategory", "seo").Return(nil, errors.New("DB error")).Once()

		article, err := service.ResolveArticle("seo", "keyword-research")

		assert.Nil(t, article)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to look up category")
		mockRepo.AssertExpectations(t)
	})
}
