package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
)

// ProgramInput returns a valid create input whose slug is derived from slug.
func ProgramInput(slug string) domain.ProgramCreateInput {
	description := fmt.Sprintf("All about %s", slug)
	return domain.ProgramCreateInput{
		Title:       fmt.Sprintf("The %s show", slug),
		Type:        domain.ProgramTypePodcast,
		Slug:        slug,
		Description: &description,
		Language:    "en",
	}
}

// EpisodeInput returns a valid audio episode input for programID.
func EpisodeInput(programID uuid.UUID, slug string) domain.EpisodeCreateInput {
	return domain.EpisodeCreateInput{
		ProgramID: programID.String(),
		Title:     fmt.Sprintf("Episode %s of the week", slug),
		Slug:      slug,
		Kind:      domain.EpisodeKindAudio,
		Source:    uuid.NewString(),
	}
}

// CreateTestProgram builds a draft program or fails the test.
func CreateTestProgram(t testing.TB, slug string) *domain.Program {
	t.Helper()
	p, err := domain.NewProgram(ProgramInput(slug))
	require.NoError(t, err)
	return p
}

// CreateTestEpisode builds a draft episode or fails the test.
func CreateTestEpisode(t testing.TB, programID uuid.UUID, slug string) *domain.Episode {
	t.Helper()
	e, err := domain.NewEpisode(EpisodeInput(programID, slug))
	require.NoError(t, err)
	return e
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
