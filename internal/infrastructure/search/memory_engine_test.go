package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type MemoryEngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine *MemoryEngine
}

func (s *MemoryEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.engine = NewMemoryEngine(logger.NewTestLogger(s.T()), KnownIndexes...)
	s.Require().NoError(s.engine.Initialize(s.ctx))
}

func (s *MemoryEngineTestSuite) TestIndexBeforeInitialize() {
	engine := NewMemoryEngine(logger.NewNoopLogger(), "programs")
	var notFound *interfaces.IndexNotFoundError

	err := engine.Index(s.ctx, "programs", interfaces.Document{"id": "a"})

	s.ErrorAs(err, &notFound)
}

func (s *MemoryEngineTestSuite) TestInitializeKeepsDocuments() {
	s.Require().NoError(s.engine.Index(s.ctx, "programs", interfaces.Document{"id": "a"}))

	s.Require().NoError(s.engine.Initialize(s.ctx))

	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Equal(1, result.Total)
}

func (s *MemoryEngineTestSuite) TestUnknownIndex() {
	var notFound *interfaces.IndexNotFoundError

	s.ErrorAs(s.engine.Delete(s.ctx, "shows", []string{"a"}), &notFound)
	s.ErrorAs(s.engine.Refresh(s.ctx, "shows"), &notFound)
	_, err := s.engine.Search(s.ctx, "shows", interfaces.SearchQuery{})
	s.ErrorAs(err, &notFound)
	s.NoError(s.engine.Refresh(s.ctx, "episodes"))
}

func (s *MemoryEngineTestSuite) TestIndexStoresCopy() {
	doc := interfaces.Document{"id": "a", "title": "Morning News"}
	s.Require().NoError(s.engine.Index(s.ctx, "programs", doc))

	doc["title"] = "changed"
	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{})
	s.Require().NoError(err)
	result.Hits[0]["title"] = "changed again"

	again, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Equal("Morning News", again.Hits[0]["title"])
}

func (s *MemoryEngineTestSuite) TestSearchOrderTextFiltersAndPaging() {
	// Arrange
	docs := []interfaces.Document{
		{"id": "c", "title": "Morning News", "language": "en"},
		{"id": "a", "title": "Evening News", "language": "en"},
		{"id": "b", "title": "Les Nouvelles", "language": "fr"},
		{"id": "d", "title": "Late news", "language": "en"},
	}
	for _, doc := range docs {
		s.Require().NoError(s.engine.Index(s.ctx, "programs", doc))
	}
	s.Require().NoError(s.engine.Index(s.ctx, "programs", interfaces.Document{"id": "c", "title": "Breakfast News", "language": "en"}))

	// Act
	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{
		Text:    "NEWS",
		Filters: map[string]interface{}{"language": "en"},
		From:    1,
		Size:    5,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Require().Len(result.Hits, 2)
	s.Equal("a", result.Hits[0].ID())
	s.Equal("d", result.Hits[1].ID())
}

func (s *MemoryEngineTestSuite) TestDelete() {
	for _, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.engine.Index(s.ctx, "episodes", interfaces.Document{"id": id}))
	}

	s.Require().NoError(s.engine.Delete(s.ctx, "episodes", []string{"b", "missing"}))

	result, err := s.engine.Search(s.ctx, "episodes", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal("a", result.Hits[0].ID())
	s.Equal("c", result.Hits[1].ID())
}

func TestMemoryEngineTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryEngineTestSuite))
}
