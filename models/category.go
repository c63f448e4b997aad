package models

// Category is a named grouping of knowledge-base articles with shared
// display styling. ColorToken is a semantic style reference resolved by the
// frontend; the backend treats it as opaque.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ColorToken  string `json:"colorToken" yaml:"color_token"`
}
