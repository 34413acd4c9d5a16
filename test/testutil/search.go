package testutil

import (
	"context"
	"sync"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// SearchCall is one write received by a RecordingSearchEngine.
type SearchCall struct {
	Op    string
	Index string
	Doc   interfaces.Document
	IDs   []string
}

// RecordingSearchEngine records writes and serves nothing back.
type RecordingSearchEngine struct {
	mu    sync.Mutex
	calls []SearchCall
	// Err is returned from Index and Delete when set.
	Err error
}

var _ interfaces.SearchEngine = (*RecordingSearchEngine)(nil)

func (r *RecordingSearchEngine) Initialize(context.Context) error { return nil }

func (r *RecordingSearchEngine) Index(_ context.Context, index string, doc interfaces.Document) error {
	r.record(SearchCall{Op: "index", Index: index, Doc: doc})
	return r.Err
}

func (r *RecordingSearchEngine) Delete(_ context.Context, index string, ids []string) error {
	r.record(SearchCall{Op: "delete", Index: index, IDs: append([]string(nil), ids...)})
	return r.Err
}

func (r *RecordingSearchEngine) Search(context.Context, string, interfaces.SearchQuery) (*interfaces.SearchResult, error) {
	return &interfaces.SearchResult{Hits: []interfaces.Document{}}, nil
}

func (r *RecordingSearchEngine) Refresh(context.Context, string) error { return nil }

// Calls returns a snapshot of the recorded writes.
func (r *RecordingSearchEngine) Calls() []SearchCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SearchCall(nil), r.calls...)
}

func (r *RecordingSearchEngine) record(c SearchCall) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}
