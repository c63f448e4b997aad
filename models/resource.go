package models

// Resource is a downloadable catalog item (template, guide, checklist...)
// listed on the resources page. Category and Type are facet values; the
// loader validates them against the facet sets declared in the catalog file.
type Resource struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	Category      string `json:"category" yaml:"category"`
	Type          string `json:"type" yaml:"type"`
	FileFormat    string `json:"fileFormat" yaml:"file_format"`
	FileSize      string `json:"fileSize" yaml:"file_size"`
	DownloadCount int    `json:"downloadCount" yaml:"download_count"`
	PublishedDate string `json:"publishedDate" yaml:"published_date"`
	UpdatedDate   string `json:"updatedDate,omitempty" yaml:"updated_date"`
	Featured      bool   `json:"featured" yaml:"featured"`
	New           bool   `json:"new" yaml:"new"`
	Popular       bool   `json:"popular" yaml:"popular"`
}

// FacetAll is the sentinel facet value meaning "no restriction". The UI
// sends it as the initial state of both facet dropdowns.
const FacetAll = "all"

// ResourceFilter carries the query string and facet selections for a
// catalog filter call. Empty facet values behave like FacetAll.
type ResourceFilter struct {
	Query    string `json:"query" form:"query"`
	Category string `json:"category" form:"category"`
	Type     string `json:"type" form:"type"`
}
