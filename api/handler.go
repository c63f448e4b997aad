package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rtnsite/models"
	"rtnsite/repository"
	"rtnsite/services"
	"rtnsite/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers, such as repositories and services.
type APIHandler struct {
	contentRepo     repository.ContentRepository
	resourceRepo    repository.ResourceRepository
	feedbackRepo    repository.FeedbackRepository
	contentService  services.ContentService
	articleService  services.ArticleService
	catalogService  services.CatalogService
	feedbackService services.FeedbackService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	contentRepo repository.ContentRepository,
	resourceRepo repository.ResourceRepository,
	feedbackRepo repository.FeedbackRepository,
	contentService services.ContentService,
	articleService services.ArticleService,
	catalogService services.CatalogService,
	feedbackService services.FeedbackService,
) *APIHandler {
	return &APIHandler{
		contentRepo:     contentRepo,
		resourceRepo:    resourceRepo,
		feedbackRepo:    feedbackRepo,
		contentService:  contentService,
		articleService:  articleService,
		catalogService:  catalogService,
		feedbackService: feedbackService,
	}
}

// InitHandler issues a page-view session id and returns the data the
// frontend needs on first load. The session id scopes the feedback ledger.
// GET /api/init
func (h *APIHandler) InitHandler(c *gin.Context) {
	sessionID := utils.GenerateSessionID()

	categories, err := h.contentRepo.ListCategories()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load categories.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Success",
		"data": gin.H{
			"sessionId":          sessionID,
			"categories":         categories,
			"resourceCategories": h.resourceRepo.ResourceCategories(),
			"resourceTypes":      h.resourceRepo.ResourceTypes(),
		},
	})
}

// ListCategoriesHandler returns the knowledge-base category set.
// GET /api/categories
func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.contentRepo.ListCategories()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load categories.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetArticleHandler resolves a knowledge-base article and returns it with
// formatted content and the derived table of contents.
// GET /api/knowledge-base/:category/:slug
func (h *APIHandler) GetArticleHandler(c *gin.Context) {
	category := c.Param("category")
	slug := c.Param("slug")

	article, err := h.articleService.ResolveArticle(category, slug)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.SendJSONError(c, http.StatusNotFound, "Article category not found.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to resolve article.", err)
		}
		return
	}

	// Persisted votes sit on top of the article's baseline counts.
	if counts, countErr := h.feedbackRepo.GetCounts(article.Key.String()); countErr != nil {
		log.Printf("WARN: [API] Could not load persisted vote counts for '%s': %v. Showing baseline counts.", article.Key, countErr)
	} else {
		article.HelpfulCount += counts.Helpful
		article.UnhelpfulCount += counts.Unhelpful
	}

	headings := h.contentService.ExtractHeadings(article.Content)
	article.Content = h.contentService.FormatContent(article.Content)

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Article retrieved successfully",
		"data": gin.H{
			"article":  article,
			"headings": headings,
		},
	})
}

// VoteRequest is the body of a feedback vote call.
type VoteRequest struct {
	SessionID string            `json:"session_id" binding:"required"`
	Choice    models.VoteChoice `json:"choice" binding:"required"`
}

// VoteHandler records a helpful/unhelpful vote for an article.
// POST /api/knowledge-base/:category/:slug/feedback
func (h *APIHandler) VoteHandler(c *gin.Context) {
	category := c.Param("category")
	slug := c.Param("slug")

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	// Resolving the article validates the category (unknown category is a
	// 404, same as rendering one) and gives us its baseline counts.
	article, err := h.articleService.ResolveArticle(category, slug)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.SendJSONError(c, http.StatusNotFound, "Article category not found.", err)
		} else {
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to resolve article.", err)
		}
		return
	}

	counts, err := h.feedbackService.RecordVote(req.SessionID, article.Key, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyVoted):
			utils.SendJSONError(c, http.StatusConflict, "Feedback has already been recorded for this article.", err)
		case errors.Is(err, services.ErrInvalidVoteChoice):
			utils.SendJSONError(c, http.StatusBadRequest, "Vote choice must be 'helpful' or 'unhelpful'.", err)
		default:
			utils.SendJSONError(c, http.StatusInternalServerError, "Failed to record feedback.", err)
		}
		return
	}

	// Report in the same number space the article view displays: the
	// article's baseline counts plus every persisted vote.
	counts.Helpful += article.HelpfulCount
	counts.Unhelpful += article.UnhelpfulCount

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Feedback recorded",
		"data":    counts,
	})
}

// ListResourcesHandler filters the resource catalog by query text and
// category/type facets.
// GET /api/resources?query=&category=&type=
func (h *APIHandler) ListResourcesHandler(c *gin.Context) {
	filter := models.ResourceFilter{
		Query:    c.Query("query"),
		Category: c.DefaultQuery("category", models.FacetAll),
		Type:     c.DefaultQuery("type", models.FacetAll),
	}

	resources, err := h.catalogService.FilterResources(filter)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to filter resources.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Resources retrieved successfully",
		"data":    resources, // Will be an empty array if nothing matches
	})
}

// SuggestResourcesHandler returns autocomplete suggestions for the resource
// search box.
// GET /api/resources/suggest?query=&limit=
func (h *APIHandler) SuggestResourcesHandler(c *gin.Context) {
	query := c.Query("query")

	limit := services.DefaultSuggestionLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid limit parameter.", err)
			return
		}
		limit = parsed
	}

	suggestions, err := h.catalogService.SuggestResources(query, limit)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to build suggestions.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Suggestions retrieved successfully",
		"data":    suggestions,
	})
}

// ListFAQsHandler filters the FAQ catalog by query text and category.
// GET /api/faqs?query=&category=
func (h *APIHandler) ListFAQsHandler(c *gin.Context) {
	query := c.Query("query")
	category := c.DefaultQuery("category", models.FacetAll)

	faqs, err := h.catalogService.FilterFAQs(query, category)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to filter FAQs.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "FAQs retrieved successfully",
		"data":    faqs,
	})
}

// SuggestFAQsHandler returns autocomplete suggestions for the FAQ search box.
// GET /api/faqs/suggest?query=&limit=
func (h *APIHandler) SuggestFAQsHandler(c *gin.Context) {
	query := c.Query("query")

	limit := services.DefaultSuggestionLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid limit parameter.", err)
			return
		}
		limit = parsed
	}

	suggestions, err := h.catalogService.SuggestFAQs(query, limit)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to build suggestions.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Suggestions retrieved successfully",
		"data":    suggestions,
	})
}
