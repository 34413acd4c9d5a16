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

type EpisodeRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *memory.EpisodeRepository
	programA uuid.UUID
	programB uuid.UUID
}

func (s *EpisodeRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewEpisodeRepository(logger.NewTestLogger(s.T()))
	s.programA = uuid.New()
	s.programB = uuid.New()
}

func (s *EpisodeRepositoryTestSuite) save(programID uuid.UUID, slug string) *domain.Episode {
	e := testutil.CreateTestEpisode(s.T(), programID, slug)
	s.Require().NoError(s.repo.Save(s.ctx, e))
	return e
}

func (s *EpisodeRepositoryTestSuite) TestSlugIsScopedToProgram() {
	a := s.save(s.programA, "pilot")
	b := s.save(s.programB, "pilot")

	foundA, err := s.repo.FindBySlugInProgram(s.ctx, s.programA, "pilot")
	s.Require().NoError(err)
	s.Equal(a.ID(), foundA.ID())

	foundB, err := s.repo.FindBySlugInProgram(s.ctx, s.programB, "pilot")
	s.Require().NoError(err)
	s.Equal(b.ID(), foundB.ID())

	err = s.repo.Save(s.ctx, testutil.CreateTestEpisode(s.T(), s.programA, "pilot"))
	s.True(apperrors.IsConflict(err))
}

func (s *EpisodeRepositoryTestSuite) TestMoveReindexes() {
	e := s.save(s.programA, "pilot")
	s.save(s.programA, "second")

	s.Require().NoError(e.MoveToProgram(domain.EpisodeMoveInput{ProgramID: s.programB.String(), Slug: "pilot-rerun"}))
	s.Require().NoError(s.repo.Save(s.ctx, e))

	_, err := s.repo.FindBySlugInProgram(s.ctx, s.programA, "pilot")
	s.True(apperrors.IsNotFound(err))

	moved, err := s.repo.FindBySlugInProgram(s.ctx, s.programB, "pilot-rerun")
	s.Require().NoError(err)
	s.Equal(e.ID(), moved.ID())

	inA, _ := s.repo.FindByProgram(s.ctx, s.programA)
	inB, _ := s.repo.FindByProgram(s.ctx, s.programB)
	s.Len(inA, 1)
	s.Require().Len(inB, 1)
	s.Equal(e.ID(), inB[0].ID())
}

func (s *EpisodeRepositoryTestSuite) TestMoveIntoTakenSlugConflicts() {
	e := s.save(s.programA, "pilot")
	s.save(s.programB, "pilot")

	s.Require().NoError(e.MoveToProgram(domain.EpisodeMoveInput{ProgramID: s.programB.String(), Slug: "pilot"}))
	err := s.repo.Save(s.ctx, e)

	s.True(apperrors.IsConflict(err))
	stored, _ := s.repo.FindByID(s.ctx, e.ID())
	s.Equal(s.programA, stored.ProgramID())
}

func (s *EpisodeRepositoryTestSuite) TestExistsBySlugInProgram() {
	e := s.save(s.programA, "pilot")
	id := e.ID()

	exists, err := s.repo.ExistsBySlugInProgram(s.ctx, s.programA, "pilot", nil)
	s.NoError(err)
	s.True(exists)

	exists, _ = s.repo.ExistsBySlugInProgram(s.ctx, s.programA, "pilot", &id)
	s.False(exists)

	exists, _ = s.repo.ExistsBySlugInProgram(s.ctx, s.programB, "pilot", nil)
	s.False(exists)
}

func (s *EpisodeRepositoryTestSuite) TestDeletePurgesIndexes() {
	e := s.save(s.programA, "pilot")

	deleted, err := s.repo.Delete(s.ctx, e.ID())
	s.NoError(err)
	s.True(deleted)

	_, err = s.repo.FindBySlugInProgram(s.ctx, s.programA, "pilot")
	s.True(apperrors.IsNotFound(err))
	episodes, err := s.repo.FindByProgram(s.ctx, s.programA)
	s.NoError(err)
	s.Empty(episodes)
	s.Equal(0, s.repo.Count())
}

func (s *EpisodeRepositoryTestSuite) TestFindMany() {
	s.save(s.programA, "one")
	two := s.save(s.programA, "two")
	s.save(s.programB, "three")
	s.Require().NoError(two.ChangeStatus(domain.EpisodeChangeStatusInput{Status: domain.EpisodeStatusPublished}))
	s.Require().NoError(s.repo.Save(s.ctx, two))

	published := domain.EpisodeStatusPublished
	page, total, err := s.repo.FindMany(s.ctx, domain.EpisodeFilters{Status: &published}, pagination.New(1, 10))
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Equal(two.ID(), page[0].ID())

	page, total, _ = s.repo.FindMany(s.ctx, domain.EpisodeFilters{ProgramID: &s.programA}, pagination.New(1, 1))
	s.Equal(2, total)
	s.Require().Len(page, 1)
	s.Equal("one", page[0].Slug())

	_, total, _ = s.repo.FindMany(s.ctx, domain.EpisodeFilters{}, pagination.New(1, 10))
	s.Equal(3, total)
}

func (s *EpisodeRepositoryTestSuite) TestFindManyByProgramReturnsLookupError() {
	s.save(s.programA, "one")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	page, total, err := s.repo.FindMany(ctx, domain.EpisodeFilters{ProgramID: &s.programA}, pagination.New(1, 10))

	s.ErrorIs(err, context.Canceled)
	s.Nil(page)
	s.Zero(total)
}

func TestEpisodeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EpisodeRepositoryTestSuite))
}
