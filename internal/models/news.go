package models

// Article is a single item of the search API "everything" response.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type NewsAPIResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	// Code and Message are only set when Status is "error".
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FetchKind int

const (
	FetchResults FetchKind = iota
	FetchEmpty
	FetchFailure
)

func (k FetchKind) String() string {
	switch k {
	case FetchResults:
		return "results"
	case FetchEmpty:
		return "empty"
	case FetchFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of one news lookup. Articles is only set for
// FetchResults and Err only for FetchFailure.
type FetchResult struct {
	Kind     FetchKind
	Query    string
	Articles []Article
	Err      error
}
