package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/internal/cms/repository/memory"
	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type ProgramRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memory.ProgramRepository
}

func (s *ProgramRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewProgramRepository(logger.NewTestLogger(s.T()))
}

func (s *ProgramRepositoryTestSuite) save(slug string) *domain.Program {
	p := testutil.CreateTestProgram(s.T(), slug)
	s.Require().NoError(s.repo.Save(s.ctx, p))
	return p
}

func (s *ProgramRepositoryTestSuite) TestSaveAndFind() {
	p := s.save("morning-news")

	byID, err := s.repo.FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.Equal(p.Title(), byID.Title())

	bySlug, err := s.repo.FindBySlug(s.ctx, "morning-news")
	s.Require().NoError(err)
	s.Equal(p.ID(), bySlug.ID())
}

func (s *ProgramRepositoryTestSuite) TestFindMissing() {
	_, err := s.repo.FindByID(s.ctx, uuid.New())
	s.True(apperrors.IsNotFound(err))

	_, err = s.repo.FindBySlug(s.ctx, "nope")
	s.True(apperrors.IsNotFound(err))
}

func (s *ProgramRepositoryTestSuite) TestReturnedValuesAreCopies() {
	p := s.save("morning-news")

	found, err := s.repo.FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.Require().NoError(found.Update(domain.ProgramUpdateInput{Title: testutil.StringPtr("Uncommitted new title")}))

	again, err := s.repo.FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.Equal("The morning-news show", again.Title())
}

func (s *ProgramRepositoryTestSuite) TestPendingEventsAreNotStored() {
	p := testutil.CreateTestProgram(s.T(), "morning-news")
	s.Require().NoError(p.ChangeStatus(domain.ProgramChangeStatusInput{Status: domain.ProgramStatusPublished}))
	s.Require().NoError(s.repo.Save(s.ctx, p))

	found, err := s.repo.FindByID(s.ctx, p.ID())
	s.Require().NoError(err)
	s.Empty(found.DomainEvents())
	s.Len(p.DomainEvents(), 1)
	s.Equal(domain.ProgramStatusPublished, found.Status())
}

func (s *ProgramRepositoryTestSuite) TestSaveRejectsTakenSlug() {
	s.save("morning-news")
	dup := testutil.CreateTestProgram(s.T(), "morning-news")

	err := s.repo.Save(s.ctx, dup)

	s.True(apperrors.IsConflict(err))
	s.Equal(1, s.repo.Count())
}

func (s *ProgramRepositoryTestSuite) TestExistsBySlug() {
	p := s.save("morning-news")
	id := p.ID()
	other := uuid.New()

	exists, err := s.repo.ExistsBySlug(s.ctx, "morning-news", nil)
	s.NoError(err)
	s.True(exists)

	exists, _ = s.repo.ExistsBySlug(s.ctx, "morning-news", &id)
	s.False(exists)

	exists, _ = s.repo.ExistsBySlug(s.ctx, "morning-news", &other)
	s.True(exists)

	exists, _ = s.repo.ExistsBySlug(s.ctx, "evening-news", nil)
	s.False(exists)
}

func (s *ProgramRepositoryTestSuite) TestDelete() {
	p := s.save("morning-news")

	deleted, err := s.repo.Delete(s.ctx, p.ID())
	s.NoError(err)
	s.True(deleted)

	_, err = s.repo.FindBySlug(s.ctx, "morning-news")
	s.True(apperrors.IsNotFound(err))

	deleted, err = s.repo.Delete(s.ctx, p.ID())
	s.NoError(err)
	s.False(deleted)

	// slug is free again
	s.save("morning-news")
}

func (s *ProgramRepositoryTestSuite) TestFindManyPaginates() {
	for _, slug := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		s.save(slug)
	}

	page, total, err := s.repo.FindMany(s.ctx, domain.ProgramFilters{}, pagination.New(2, 2))

	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page, 2)
	s.Equal("charlie", page[0].Slug())
	s.Equal("delta", page[1].Slug())

	page, total, _ = s.repo.FindMany(s.ctx, domain.ProgramFilters{Search: testutil.StringPtr("ECH")}, pagination.New(1, 10))
	s.Equal(1, total)
	s.Require().Len(page, 1)
	s.Equal("echo", page[0].Slug())

	page, total, _ = s.repo.FindMany(s.ctx, domain.ProgramFilters{}, pagination.New(4, 2))
	s.Equal(5, total)
	s.Empty(page)
}

func TestProgramRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProgramRepositoryTestSuite))
}
