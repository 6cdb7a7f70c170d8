package model

type ResultType string

const (
	ResultStudent ResultType = "student"
	ResultEvent   ResultType = "event"
)

type SearchResult struct {
	Type        ResultType `json:"type" yaml:"type"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Data        any        `json:"data" yaml:"data"`
}
