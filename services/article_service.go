package services

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rtnsite/models"
	"rtnsite/repository"
	"rtnsite/utils"
)

// ErrCategoryNotFound is returned when resolution is attempted against a
// category id that is not registered. It is the only hard failure of the
// resolver: once the category is valid, every slug resolves to something.
var ErrCategoryNotFound = errors.New("category not found")

// skeletonSections are the section titles of the generic content skeleton
// used for tier-2 and tier-3 synthesized articles.
var skeletonSections = []string{
	"Introduction",
	"Getting Started",
	"Key Concepts",
	"Step-by-Step Guide",
	"Best Practices",
	"Troubleshooting",
	"Advanced Topics",
}

// ArticleService resolves (category, slug) pairs to articles through three
// tiers of decreasing specificity: explicit record, category template,
// generic fallback.
type ArticleService interface {
	ResolveArticle(category string, slug string) (*models.Article, error)
}

type articleService struct {
	contentRepo repository.ContentRepository
}

// NewArticleService creates a new instance of ArticleService.
func NewArticleService(contentRepo repository.ContentRepository) ArticleService {
	return &articleService{
		contentRepo: contentRepo,
	}
}

// ResolveArticle resolves an article for the given category and slug.
// The category is validated before any slug lookup; an unknown category
// fails regardless of slug.
func (s *articleService) ResolveArticle(category string, slug string) (*models.Article, error) {
	cat, err := s.contentRepo.GetCategory(category)
	if err != nil {
		errMsg := fmt.Sprintf("failed to look up category '%s'", category)
		log.Printf("ERROR: [ArticleService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	if cat == nil {
		log.Printf("WARN: [ArticleService] Resolution failed: unknown category '%s' (slug: '%s').", category, slug)
		return nil, fmt.Errorf("%w: '%s'", ErrCategoryNotFound, category)
	}

	key := models.ArticleKey{Category: category, Slug: slug}

	// Tier 1: explicit article record.
	article, err := s.contentRepo.GetArticle(key)
	if err != nil {
		errMsg := fmt.Sprintf("failed to look up article '%s'", key)
		log.Printf("ERROR: [ArticleService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	if article != nil {
		log.Printf("INFO: [ArticleService] Resolved '%s' from the explicit article table.", key)
		return article, nil
	}

	templates, err := s.contentRepo.GetTemplates(category)
	if err != nil {
		errMsg := fmt.Sprintf("failed to look up templates for category '%s'", category)
		log.Printf("ERROR: [ArticleService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	// Tier 2: category template matching the slug.
	for _, tmpl := range templates {
		if tmpl.Slug == slug {
			log.Printf("INFO: [ArticleService] Resolved '%s' from the '%s' template list.", key, category)
			return s.synthesizeFromTemplate(key, *cat, tmpl, templates), nil
		}
	}

	// Tier 3: fully generic fallback. Always shows *something* rather than a
	// dead end for any slug under a valid category.
	log.Printf("INFO: [ArticleService] No record or template for '%s'; synthesizing a generic article.", key)
	return s.synthesizeGeneric(key, *cat, templates), nil
}

func (s *articleService) synthesizeFromTemplate(key models.ArticleKey, cat models.Category, tmpl models.ArticleTemplate, templates []models.ArticleTemplate) *models.Article {
	humanized := Humanize(key.Slug)
	helpful, unhelpful := seedVoteCounts(key)

	article := &models.Article{
		Key:             key,
		Title:           tmpl.Title,
		Description:     tmpl.Description,
		Content:         buildSkeletonContent(humanized, cat.Title),
		Tags:            defaultTags(key.Category, humanized),
		Author:          "RTN Editorial Team",
		LastUpdated:     tmpl.LastUpdated,
		ReadTime:        tmpl.ReadTime,
		Popular:         tmpl.Popular,
		HelpfulCount:    helpful,
		UnhelpfulCount:  unhelpful,
		RelatedArticles: relatedFromTemplates(key, templates),
	}
	if article.LastUpdated == "" {
		article.LastUpdated = utils.FormatDate(time.Now())
	}
	if article.ReadTime == "" {
		article.ReadTime = seedReadTime(key)
	}
	return article
}

func (s *articleService) synthesizeGeneric(key models.ArticleKey, cat models.Category, templates []models.ArticleTemplate) *models.Article {
	humanized := Humanize(key.Slug)
	helpful, unhelpful := seedVoteCounts(key)

	return &models.Article{
		Key:             key,
		Title:           humanized,
		Description:     fmt.Sprintf("Everything you need to know about %s in %s.", strings.ToLower(humanized), cat.Title),
		Content:         buildSkeletonContent(humanized, cat.Title),
		Tags:            defaultTags(key.Category, humanized),
		Author:          "RTN Editorial Team",
		LastUpdated:     utils.FormatDate(time.Now()),
		ReadTime:        seedReadTime(key),
		HelpfulCount:    helpful,
		UnhelpfulCount:  unhelpful,
		RelatedArticles: relatedFromTemplates(key, templates),
	}
}

// buildSkeletonContent renders the generic section skeleton, substituting
// the humanized slug and category title into each section body.
func buildSkeletonContent(topic string, categoryTitle string) string {
	var b strings.Builder
	for _, section := range skeletonSections {
		b.WriteString(fmt.Sprintf("<h2>%s</h2>", section))
		b.WriteString(fmt.Sprintf("<p>This section covers %s for %s in %s.</p>", strings.ToLower(section), topic, categoryTitle))
	}
	return b.String()
}

func defaultTags(category string, humanized string) []string {
	return []string{category, humanized, "guide", "tutorial"}
}

// relatedFromTemplates links up to three other templates of the same
// category as related reading.
func relatedFromTemplates(key models.ArticleKey, templates []models.ArticleTemplate) []models.RelatedArticle {
	related := make([]models.RelatedArticle, 0, 3)
	for _, tmpl := range templates {
		if tmpl.Slug == key.Slug {
			continue
		}
		related = append(related, models.RelatedArticle{
			Title: tmpl.Title,
			Path:  fmt.Sprintf("/knowledge-base/%s/%s", key.Category, tmpl.Slug),
		})
		if len(related) == 3 {
			break
		}
	}
	return related
}

// seedVoteCounts derives cosmetic helpful/unhelpful counts for synthesized
// articles from a hash of the article key, so repeated resolutions of the
// same key always show the same numbers.
func seedVoteCounts(key models.ArticleKey) (helpful int, unhelpful int) {
	sum := sha256.Sum256([]byte(key.String()))
	helpful = 25 + int(binary.BigEndian.Uint32(sum[0:4])%75)
	unhelpful = 1 + int(binary.BigEndian.Uint32(sum[4:8])%9)
	return helpful, unhelpful
}

// seedReadTime derives a stable display read time for synthesized articles.
func seedReadTime(key models.ArticleKey) string {
	sum := sha256.Sum256([]byte(key.String()))
	return fmt.Sprintf("%d min read", 5+int(binary.BigEndian.Uint32(sum[8:12])%8))
}
