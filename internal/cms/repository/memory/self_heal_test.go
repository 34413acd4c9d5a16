package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

func TestFindBySlugDropsStaleProgramEntry(t *testing.T) {
	ctx := context.Background()
	repo := NewProgramRepository(logger.NewTestLogger(t))
	p := testutil.CreateTestProgram(t, "old-slug")
	require.NoError(t, repo.Save(ctx, p))

	// rewrite the slot behind the index
	in := testutil.ProgramInput("new-slug")
	in.ID = p.ID().String()
	renamed, err := domain.NewProgram(in)
	require.NoError(t, err)
	slot := repo.programs[p.ID()]
	slot.program = *renamed
	repo.programs[p.ID()] = slot

	_, err = repo.FindBySlug(ctx, "old-slug")

	assert.True(t, apperrors.IsNotFound(err))
	_, indexed := repo.bySlug["old-slug"]
	assert.False(t, indexed)
	_, err = repo.FindByID(ctx, p.ID())
	assert.NoError(t, err)
}

func TestSaveReplacesStaleProgramSlugOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewProgramRepository(logger.NewNoopLogger())
	ghost := uuid.New()
	repo.bySlug["morning-news"] = ghost

	p := testutil.CreateTestProgram(t, "morning-news")
	require.NoError(t, repo.Save(ctx, p))

	assert.Equal(t, p.ID(), repo.bySlug["morning-news"])
}

func TestFindBySlugInProgramDropsStaleEpisodeEntry(t *testing.T) {
	ctx := context.Background()
	repo := NewEpisodeRepository(logger.NewTestLogger(t))
	programID := uuid.New()
	e := testutil.CreateTestEpisode(t, programID, "pilot")
	require.NoError(t, repo.Save(ctx, e))

	moved := e.CloneWithoutEvents()
	require.NoError(t, moved.MoveToProgram(domain.EpisodeMoveInput{ProgramID: uuid.NewString(), Slug: "pilot"}))
	slot := repo.episodes[e.ID()]
	slot.episode = *moved
	repo.episodes[e.ID()] = slot

	_, err := repo.FindBySlugInProgram(ctx, programID, "pilot")
	assert.True(t, apperrors.IsNotFound(err))
	_, indexed := repo.byProgramSlug[programSlugKey(programID, "pilot")]
	assert.False(t, indexed)

	episodes, err := repo.FindByProgram(ctx, programID)
	require.NoError(t, err)
	assert.Empty(t, episodes)
	_, grouped := repo.byProgram[programID]
	assert.False(t, grouped, "empty group should be removed")
}

func TestDeleteRemovesEmptyGroup(t *testing.T) {
	ctx := context.Background()
	repo := NewEpisodeRepository(logger.NewNoopLogger())
	programID := uuid.New()
	first := testutil.CreateTestEpisode(t, programID, "first")
	second := testutil.CreateTestEpisode(t, programID, "second")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	_, err := repo.Delete(ctx, first.ID())
	require.NoError(t, err)
	assert.Len(t, repo.byProgram[programID], 1)

	_, err = repo.Delete(ctx, second.ID())
	require.NoError(t, err)
	assert.NotContains(t, repo.byProgram, programID)
	assert.Empty(t, repo.byProgramSlug)
}
