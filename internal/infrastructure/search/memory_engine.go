package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

type memoryIndex struct {
	docs  map[string]interfaces.Document
	order []string
}

// MemoryEngine keeps documents in process. Writes are visible immediately.
type MemoryEngine struct {
	mu      sync.RWMutex
	known   []string
	indexes map[string]*memoryIndex
	logger  interfaces.Logger
}

var _ interfaces.SearchEngine = (*MemoryEngine)(nil)

// NewMemoryEngine creates an engine that bootstraps the given indexes on Initialize
func NewMemoryEngine(logger interfaces.Logger, indexes ...string) *MemoryEngine {
	return &MemoryEngine{
		known:   indexes,
		indexes: make(map[string]*memoryIndex),
		logger:  logger,
	}
}

// Initialize creates the known indexes, keeping the contents of existing ones
func (e *MemoryEngine) Initialize(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range e.known {
		if _, ok := e.indexes[name]; !ok {
			e.indexes[name] = &memoryIndex{docs: make(map[string]interfaces.Document)}
		}
	}
	e.logger.Info("Search indexes ready", interfaces.Any("indexes", e.known))
	return nil
}

// Index stores a copy of doc, replacing any document with the same id in place
func (e *MemoryEngine) Index(_ context.Context, index string, doc interfaces.Document) error {
	id := doc.ID()
	if id == "" {
		return fmt.Errorf("document for index %s has no id", index)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx, err := e.lookup(index)
	if err != nil {
		return err
	}
	if _, exists := idx.docs[id]; !exists {
		idx.order = append(idx.order, id)
	}
	idx.docs[id] = copyDocument(doc)
	return nil
}

// Delete removes documents by id; unknown ids are ignored
func (e *MemoryEngine) Delete(_ context.Context, index string, ids []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, err := e.lookup(index)
	if err != nil {
		return err
	}

	removed := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := idx.docs[id]; ok {
			delete(idx.docs, id)
			removed[id] = true
		}
	}
	if len(removed) == 0 {
		return nil
	}

	kept := idx.order[:0]
	for _, id := range idx.order {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	idx.order = kept
	return nil
}

// Search returns matching documents in first-indexed order
func (e *MemoryEngine) Search(_ context.Context, index string, query interfaces.SearchQuery) (*interfaces.SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	idx, err := e.lookup(index)
	if err != nil {
		return nil, err
	}

	matched := make([]interfaces.Document, 0, len(idx.order))
	for _, id := range idx.order {
		if doc := idx.docs[id]; query.Matches(doc) {
			matched = append(matched, doc)
		}
	}

	start, end := query.Window(len(matched))
	hits := make([]interfaces.Document, 0, end-start)
	for _, doc := range matched[start:end] {
		hits = append(hits, copyDocument(doc))
	}
	return &interfaces.SearchResult{Hits: hits, Total: len(matched)}, nil
}

// Refresh is a no-op on known indexes
func (e *MemoryEngine) Refresh(_ context.Context, index string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, err := e.lookup(index)
	return err
}

func (e *MemoryEngine) lookup(index string) (*memoryIndex, error) {
	idx, ok := e.indexes[index]
	if !ok {
		return nil, &interfaces.IndexNotFoundError{Index: index}
	}
	return idx, nil
}

func copyDocument(doc interfaces.Document) interfaces.Document {
	out := make(interfaces.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
