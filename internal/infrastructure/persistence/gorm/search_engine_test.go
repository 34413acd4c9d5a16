package gorm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type SearchEngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine *SearchEngine
}

func (s *SearchEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.engine = NewSearchEngine(NewTestDB(s.T()), logger.NewTestLogger(s.T()), "programs", "episodes")
	s.Require().NoError(s.engine.Initialize(s.ctx))
}

func (s *SearchEngineTestSuite) index(docs ...interfaces.Document) {
	for _, doc := range docs {
		s.Require().NoError(s.engine.Index(s.ctx, "programs", doc))
	}
}

func (s *SearchEngineTestSuite) TestInitializeIsIdempotent() {
	s.NoError(s.engine.Initialize(s.ctx))
}

func (s *SearchEngineTestSuite) TestUnknownIndex() {
	var notFound *interfaces.IndexNotFoundError

	err := s.engine.Index(s.ctx, "shows", interfaces.Document{"id": "1"})
	s.ErrorAs(err, &notFound)
	s.Equal("shows", notFound.Index)

	_, err = s.engine.Search(s.ctx, "shows", interfaces.SearchQuery{})
	s.ErrorAs(err, &notFound)
	s.ErrorAs(s.engine.Refresh(s.ctx, "shows"), &notFound)
}

func (s *SearchEngineTestSuite) TestIndexRequiresID() {
	err := s.engine.Index(s.ctx, "programs", interfaces.Document{"title": "Nameless"})

	s.ErrorContains(err, "no id")
}

func (s *SearchEngineTestSuite) TestIndexReplacesInPlace() {
	// Arrange
	s.index(
		interfaces.Document{"id": "a", "title": "Morning News"},
		interfaces.Document{"id": "b", "title": "Evening News"},
	)

	// Act
	s.index(interfaces.Document{"id": "a", "title": "Breakfast News", "description": nil})

	// Assert
	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Equal(interfaces.Document{"id": "a", "title": "Breakfast News", "description": nil}, result.Hits[0])
	s.Equal("b", result.Hits[1].ID())
}

func (s *SearchEngineTestSuite) TestSearchTextAndPaging() {
	s.index(
		interfaces.Document{"id": "a", "title": "Morning News"},
		interfaces.Document{"id": "b", "title": "Evening NEWS"},
		interfaces.Document{"id": "c", "title": "Weather"},
		interfaces.Document{"id": "d", "title": "100% news_wire"},
	)

	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{Text: "news", From: 1, Size: 1})
	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Require().Len(result.Hits, 1)
	s.Equal("b", result.Hits[0].ID())

	literal, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{Text: "0% news_"})
	s.Require().NoError(err)
	s.Equal(1, literal.Total)
	s.Equal("d", literal.Hits[0].ID())
}

func (s *SearchEngineTestSuite) TestSearchFilters() {
	s.index(
		interfaces.Document{"id": "a", "title": "Morning News", "language": "en"},
		interfaces.Document{"id": "b", "title": "Les Nouvelles", "language": "fr"},
		interfaces.Document{"id": "c", "title": "Evening News", "language": "en"},
	)

	result, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{
		Filters: map[string]interface{}{"language": "en"},
		Size:    1,
	})

	s.Require().NoError(err)
	s.Equal(2, result.Total)
	s.Require().Len(result.Hits, 1)
	s.Equal("a", result.Hits[0].ID())
}

func (s *SearchEngineTestSuite) TestDeleteIgnoresUnknownIDs() {
	s.index(interfaces.Document{"id": "a", "title": "Morning News"})
	s.Require().NoError(s.engine.Index(s.ctx, "episodes", interfaces.Document{"id": "a", "title": "Pilot"}))

	s.Require().NoError(s.engine.Delete(s.ctx, "programs", []string{"a", "zzz"}))
	s.Require().NoError(s.engine.Delete(s.ctx, "programs", nil))

	programs, err := s.engine.Search(s.ctx, "programs", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Zero(programs.Total)
	episodes, err := s.engine.Search(s.ctx, "episodes", interfaces.SearchQuery{})
	s.Require().NoError(err)
	s.Equal(1, episodes.Total)
}

func TestSearchEngineTestSuite(t *testing.T) {
	suite.Run(t, new(SearchEngineTestSuite))
}
