package repository

import (
	"log"
	"sync"

	"rtnsite/models"
)

// ResourceRepository is the read interface over the resources/FAQ catalog.
type ResourceRepository interface {
	ListResources() ([]models.Resource, error)
	ListFAQs() ([]models.FAQItem, error)
	ResourceCategories() []string
	ResourceTypes() []string
}

// resourceRepository serves the fixed resources/FAQ catalog from memory,
// preserving catalog file order (the filter engine relies on it).
type resourceRepository struct {
	resources  []models.Resource
	faqs       []models.FAQItem
	categories []string
	types      []string
	mu         sync.RWMutex
}

// NewResourceRepository creates a new instance of ResourceRepository.
func NewResourceRepository(catalog *ResourceCatalog) ResourceRepository {
	repo := &resourceRepository{
		resources:  append([]models.Resource(nil), catalog.Resources...),
		faqs:       append([]models.FAQItem(nil), catalog.FAQs...),
		categories: append([]string(nil), catalog.ResourceCategories...),
		types:      append([]string(nil), catalog.ResourceTypes...),
	}
	log.Printf("INFO: [ResourceRepository] Loaded %d resources and %d FAQs.", len(repo.resources), len(repo.faqs))
	return repo
}

// ListResources returns the resource catalog in source order.
func (r *resourceRepository) ListResources() ([]models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copies keep callers from mutating the internal store.
	result := make([]models.Resource, len(r.resources))
	copy(result, r.resources)
	return result, nil
}

// ListFAQs returns the FAQ catalog in source order.
func (r *resourceRepository) ListFAQs() ([]models.FAQItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.FAQItem, len(r.faqs))
	copy(result, r.faqs)
	return result, nil
}

// ResourceCategories returns the fixed category facet values.
func (r *resourceRepository) ResourceCategories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.categories...)
}

// ResourceTypes returns the fixed type facet values.
func (r *resourceRepository) ResourceTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.types...)
}
