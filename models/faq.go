package models

// FAQItem is a question/answer pair on the FAQ page. Category is the single
// facet dimension for FAQ filtering.
type FAQItem struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
}
