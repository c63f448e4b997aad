package services

import (
	"fmt"
	"log"
	"strings"

	"rtnsite/models"
	"rtnsite/repository"
)

// DefaultSuggestionLimit caps the autocomplete dropdown when the caller does
// not ask for a specific limit.
const DefaultSuggestionLimit = 5

// CatalogService filters the fixed resources/FAQ catalogs by free-text query
// and facet selections. Filtering is a stable linear scan: matches keep their
// catalog order, and the engine is cheap enough to re-run on every keystroke.
type CatalogService interface {
	FilterResources(filter models.ResourceFilter) ([]models.Resource, error)
	SuggestResources(query string, limit int) ([]models.Resource, error)
	FilterFAQs(query string, category string) ([]models.FAQItem, error)
	SuggestFAQs(query string, limit int) ([]models.FAQItem, error)
}

type catalogService struct {
	resourceRepo repository.ResourceRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(resourceRepo repository.ResourceRepository) CatalogService {
	return &catalogService{
		resourceRepo: resourceRepo,
	}
}

// FilterResources returns the resources matching the query and facets, in
// catalog order. A blank query matches everything; a facet set to "" or
// "all" does not restrict. All predicates are ANDed. No matches is an empty
// slice, never an error.
func (s *catalogService) FilterResources(filter models.ResourceFilter) ([]models.Resource, error) {
	resources, err := s.resourceRepo.ListResources()
	if err != nil {
		errMsg := "failed to list resources for filtering"
		log.Printf("ERROR: [CatalogService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	matched := make([]models.Resource, 0, len(resources))
	for _, res := range resources {
		if !matchesQuery(filter.Query, res.Title, res.Description) {
			continue
		}
		if !matchesFacet(filter.Category, res.Category) {
			continue
		}
		if !matchesFacet(filter.Type, res.Type) {
			continue
		}
		matched = append(matched, res)
	}
	return matched, nil
}

// SuggestResources returns up to limit resources matching the query text,
// for the autocomplete dropdown. Unlike FilterResources, a blank query
// yields no suggestions.
func (s *catalogService) SuggestResources(query string, limit int) ([]models.Resource, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Resource{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	resources, err := s.resourceRepo.ListResources()
	if err != nil {
		errMsg := "failed to list resources for suggestions"
		log.Printf("ERROR: [CatalogService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	suggestions := make([]models.Resource, 0, limit)
	for _, res := range resources {
		if !matchesQuery(query, res.Title, res.Description) {
			continue
		}
		suggestions = append(suggestions, res)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions, nil
}

// FilterFAQs returns the FAQ entries matching the query (over question and
// answer text) and category facet, in catalog order.
func (s *catalogService) FilterFAQs(query string, category string) ([]models.FAQItem, error) {
	faqs, err := s.resourceRepo.ListFAQs()
	if err != nil {
		errMsg := "failed to list FAQs for filtering"
		log.Printf("ERROR: [CatalogService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	matched := make([]models.FAQItem, 0, len(faqs))
	for _, faq := range faqs {
		if !matchesQuery(query, faq.Question, faq.Answer) {
			continue
		}
		if !matchesFacet(category, faq.Category) {
			continue
		}
		matched = append(matched, faq)
	}
	return matched, nil
}

// SuggestFAQs returns up to limit FAQ entries matching the query text, for
// the help-center search box. As with SuggestResources, a blank query yields
// no suggestions.
func (s *catalogService) SuggestFAQs(query string, limit int) ([]models.FAQItem, error) {
	if strings.TrimSpace(query) == "" {
		return []models.FAQItem{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	faqs, err := s.resourceRepo.ListFAQs()
	if err != nil {
		errMsg := "failed to list FAQs for suggestions"
		log.Printf("ERROR: [CatalogService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	suggestions := make([]models.FAQItem, 0, limit)
	for _, faq := range faqs {
		if !matchesQuery(query, faq.Question, faq.Answer) {
			continue
		}
		suggestions = append(suggestions, faq)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions, nil
}

// matchesQuery reports whether any field contains the query,
// case-insensitively. A blank or whitespace-only query matches everything;
// anything else is matched verbatim, surrounding whitespace included.
func matchesQuery(query string, fields ...string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// matchesFacet reports whether the value satisfies the facet selection.
// Empty and the "all" sentinel leave the dimension unrestricted; anything
// else must match exactly.
func matchesFacet(selected string, value string) bool {
	if selected == "" || selected == models.FacetAll {
		return true
	}
	return selected == value
}
