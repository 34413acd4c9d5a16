package interfaces

import (
	"context"
	"fmt"
	"strings"
)

// Document is a flat search document. It must carry an "id" key.
type Document map[string]interface{}

// ID returns the document identifier or an empty string.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// SearchQuery selects documents from a single index.
type SearchQuery struct {
	Text    string
	Filters map[string]interface{}
	From    int
	Size    int
}

// SearchResult holds one page of hits and the total number of matches.
type SearchResult struct {
	Hits  []Document
	Total int
}

// SearchEngine is the indexing port consumed by the projection handlers.
type SearchEngine interface {
	// Initialize bootstraps the known indexes
	Initialize(ctx context.Context) error

	// Index inserts or replaces a document
	Index(ctx context.Context, index string, doc Document) error

	// Delete removes documents by id; unknown ids are ignored
	Delete(ctx context.Context, index string, ids []string) error

	// Search queries a single index
	Search(ctx context.Context, index string, query SearchQuery) (*SearchResult, error)

	// Refresh makes recent writes visible to Search
	Refresh(ctx context.Context, index string) error
}

// IndexNotFoundError is returned for operations on an index that was never initialized.
type IndexNotFoundError struct {
	Index string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("search index %q not found", e.Index)
}

// MatchesText reports whether any string field contains text, ignoring case.
// Empty text matches every document.
func (d Document) MatchesText(text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	for _, value := range d {
		if s, ok := value.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// MatchesFilters reports whether every filter equals the document field.
// Values are compared by their printed form so decoded JSON numbers still match.
func (d Document) MatchesFilters(filters map[string]interface{}) bool {
	for key, want := range filters {
		got, ok := d[key]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

// Matches applies both the text and the filters of q.
func (q SearchQuery) Matches(doc Document) bool {
	return doc.MatchesText(q.Text) && doc.MatchesFilters(q.Filters)
}

// Window clamps From and Size to a slice of length n. A zero Size means the rest.
func (q SearchQuery) Window(n int) (start, end int) {
	start = q.From
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = n
	if q.Size > 0 && start+q.Size < n {
		end = start + q.Size
	}
	return start, end
}
