package repository

import (
	"fmt"
	"os"

	"rtnsite/models"

	"gopkg.in/yaml.v3"
)

// KnowledgeBaseCatalog is the immutable article data set loaded at startup:
// the category registry, the explicit article table and the per-category
// template lists.
type KnowledgeBaseCatalog struct {
	Categories []models.Category
	Articles   map[models.ArticleKey]models.Article
	Templates  map[string][]models.ArticleTemplate
}

// ResourceCatalog is the immutable resources/FAQ data set, with the fixed
// facet value sets the filter engine validates against.
type ResourceCatalog struct {
	ResourceCategories []string
	ResourceTypes      []string
	Resources          []models.Resource
	FAQCategories      []string
	FAQs               []models.FAQItem
}

type articleEntry struct {
	Category       string         `yaml:"category"`
	Slug           string         `yaml:"slug"`
	models.Article `yaml:",inline"`
}

type knowledgeBaseFile struct {
	Categories []models.Category                   `yaml:"categories"`
	Articles   []articleEntry                      `yaml:"articles"`
	Templates  map[string][]models.ArticleTemplate `yaml:"templates"`
}

type resourcesFile struct {
	ResourceCategories []string          `yaml:"resource_categories"`
	ResourceTypes      []string          `yaml:"resource_types"`
	Resources          []models.Resource `yaml:"resources"`
	FAQCategories      []string          `yaml:"faq_categories"`
	FAQs               []models.FAQItem  `yaml:"faqs"`
}

// LoadKnowledgeBaseCatalog reads and validates the knowledge-base seed file.
// Every article and template list must reference a registered category, and
// category ids must be unique.
func LoadKnowledgeBaseCatalog(path string) (*KnowledgeBaseCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base catalog: %w", err)
	}

	var file knowledgeBaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse knowledge base catalog: %w", err)
	}

	categoryIDs := make(map[string]bool, len(file.Categories))
	for _, cat := range file.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("knowledge base catalog: category with empty id (title: '%s')", cat.Title)
		}
		if categoryIDs[cat.ID] {
			return nil, fmt.Errorf("knowledge base catalog: duplicate category id '%s'", cat.ID)
		}
		categoryIDs[cat.ID] = true
	}

	catalog := &KnowledgeBaseCatalog{
		Categories: file.Categories,
		Articles:   make(map[models.ArticleKey]models.Article, len(file.Articles)),
		Templates:  file.Templates,
	}

	for _, entry := range file.Articles {
		if !categoryIDs[entry.Category] {
			return nil, fmt.Errorf("knowledge base catalog: article '%s' references unknown category '%s'", entry.Slug, entry.Category)
		}
		key := models.ArticleKey{Category: entry.Category, Slug: entry.Slug}
		if _, exists := catalog.Articles[key]; exists {
			return nil, fmt.Errorf("knowledge base catalog: duplicate article key '%s'", key)
		}
		article := entry.Article
		article.Key = key
		catalog.Articles[key] = article
	}

	for categoryID := range file.Templates {
		if !categoryIDs[categoryID] {
			return nil, fmt.Errorf("knowledge base catalog: template list references unknown category '%s'", categoryID)
		}
	}

	return catalog, nil
}

// LoadResourceCatalog reads and validates the resources/FAQ seed file.
// Resource category/type and FAQ category values must belong to the facet
// sets declared in the same file.
func LoadResourceCatalog(path string) (*ResourceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resource catalog: %w", err)
	}

	var file resourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse resource catalog: %w", err)
	}

	resourceCategories := stringSet(file.ResourceCategories)
	resourceTypes := stringSet(file.ResourceTypes)
	faqCategories := stringSet(file.FAQCategories)

	for _, res := range file.Resources {
		if !resourceCategories[res.Category] {
			return nil, fmt.Errorf("resource catalog: resource '%s' has unknown category '%s'", res.ID, res.Category)
		}
		if !resourceTypes[res.Type] {
			return nil, fmt.Errorf("resource catalog: resource '%s' has unknown type '%s'", res.ID, res.Type)
		}
	}
	for _, faq := range file.FAQs {
		if !faqCategories[faq.Category] {
			return nil, fmt.Errorf("resource catalog: FAQ '%s' has unknown category '%s'", faq.ID, faq.Category)
		}
	}

	return &ResourceCatalog{
		ResourceCategories: file.ResourceCategories,
		ResourceTypes:      file.ResourceTypes,
		Resources:          file.Resources,
		FAQCategories:      file.FAQCategories,
		FAQs:               file.FAQs,
	}, nil
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
