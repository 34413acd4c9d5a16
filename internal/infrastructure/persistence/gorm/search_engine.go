package gorm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchEngine persists search documents through GORM
type SearchEngine struct {
	db      *gorm.DB
	logger  interfaces.Logger
	indexes []string
}

var _ interfaces.SearchEngine = (*SearchEngine)(nil)

// NewSearchEngine creates a search engine over db. Initialize registers indexes.
func NewSearchEngine(db *gorm.DB, logger interfaces.Logger, indexes ...string) *SearchEngine {
	return &SearchEngine{
		db:      db,
		logger:  logger,
		indexes: indexes,
	}
}

// Initialize registers every known index. Already registered indexes are kept.
func (e *SearchEngine) Initialize(ctx context.Context) error {
	for _, name := range e.indexes {
		_, err := repository.FindOneBy[SearchIndexModel](ctx, e.db, "name = ?", name)
		if err == nil {
			continue
		}
		if !pkgerrors.IsNotFound(err) {
			return err
		}
		// a concurrent Initialize may have won the insert
		err = repository.Create(ctx, e.db, &SearchIndexModel{Name: name})
		if err != nil && !pkgerrors.IsConflict(err) {
			return fmt.Errorf("failed to register index %s: %w", name, err)
		}
	}
	e.logger.Info("Search indexes ready", interfaces.Any("indexes", e.indexes))
	return nil
}

// Index inserts or replaces doc, keeping its original position in listings
func (e *SearchEngine) Index(ctx context.Context, index string, doc interfaces.Document) error {
	if err := e.ensureIndex(ctx, index); err != nil {
		return err
	}
	id := doc.ID()
	if id == "" {
		return fmt.Errorf("document for index %s has no id", index)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", id, err)
	}

	model := &SearchDocumentModel{
		IndexName: index,
		DocID:     id,
		Body:      string(body),
		Content:   searchableContent(doc),
	}
	return repository.Upsert(ctx, e.db, model,
		[]string{"index_name", "doc_id"},
		[]string{"body", "content", "updated_at"})
}

// Delete removes documents by id; unknown ids are ignored
func (e *SearchEngine) Delete(ctx context.Context, index string, ids []string) error {
	if err := e.ensureIndex(ctx, index); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	removed, err := repository.DeleteWhere[SearchDocumentModel](ctx, e.db, "index_name = ? AND doc_id IN ?", index, ids)
	if err != nil {
		return err
	}
	e.logger.Debug("Search documents deleted",
		interfaces.String("index", index),
		interfaces.Int("requested", len(ids)),
		interfaces.Any("removed", removed))
	return nil
}

// Search matches text in SQL and applies filters on the decoded documents
func (e *SearchEngine) Search(ctx context.Context, index string, query interfaces.SearchQuery) (*interfaces.SearchResult, error) {
	if err := e.ensureIndex(ctx, index); err != nil {
		return nil, err
	}

	scopes := []repository.Scope{inIndex(index), containingText(query.Text)}
	const order = "created_at, doc_id"

	if len(query.Filters) == 0 {
		limit := -1
		if query.Size > 0 {
			limit = query.Size
		}
		offset := query.From
		if offset < 0 {
			offset = 0
		}
		rows, total, err := repository.List[SearchDocumentModel](ctx, e.db, limit, offset, order, scopes...)
		if err != nil {
			return nil, err
		}
		hits, err := decodeDocuments(rows)
		if err != nil {
			return nil, err
		}
		return &interfaces.SearchResult{Hits: hits, Total: int(total)}, nil
	}

	rows, _, err := repository.List[SearchDocumentModel](ctx, e.db, -1, -1, order, scopes...)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocuments(rows)
	if err != nil {
		return nil, err
	}

	matched := make([]interfaces.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.MatchesFilters(query.Filters) {
			matched = append(matched, doc)
		}
	}
	start, end := query.Window(len(matched))
	return &interfaces.SearchResult{Hits: matched[start:end], Total: len(matched)}, nil
}

// Refresh is a no-op: writes are visible once committed
func (e *SearchEngine) Refresh(ctx context.Context, index string) error {
	return e.ensureIndex(ctx, index)
}

func (e *SearchEngine) ensureIndex(ctx context.Context, index string) error {
	_, err := repository.FindOneBy[SearchIndexModel](ctx, e.db, "name = ?", index)
	if pkgerrors.IsNotFound(err) {
		return &interfaces.IndexNotFoundError{Index: index}
	}
	return err
}

func inIndex(index string) repository.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("index_name = ?", index)
	}
}

func containingText(text string) repository.Scope {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
		return db.Where(`content LIKE ? ESCAPE '\'`, pattern)
	}
}

func decodeDocuments(rows []*SearchDocumentModel) ([]interfaces.Document, error) {
	docs := make([]interfaces.Document, 0, len(rows))
	for _, row := range rows {
		var doc interfaces.Document
		if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
			return nil, errors.Join(fmt.Errorf("corrupt document %s/%s", row.IndexName, row.DocID), err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// searchableContent joins the lowercased string fields in key order
func searchableContent(doc interfaces.Document) string {
	keys := make([]string, 0, len(doc))
	for key, value := range doc {
		if _, ok := value.(string); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strings.ToLower(doc[key].(string))
	}
	return strings.Join(parts, "\n")
}
