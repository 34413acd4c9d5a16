package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/test/testutil"
)

func TestProgramFilterSpecification(t *testing.T) {
	news := testutil.CreateTestProgram(t, "morning-news")
	require.NoError(t, news.ChangeStatus(domain.ProgramChangeStatusInput{Status: domain.ProgramStatusPublished}))
	docs := testutil.CreateTestProgram(t, "ocean-life")
	series := domain.ProgramTypeSeries
	require.NoError(t, docs.Update(domain.ProgramUpdateInput{
		Type:        &series,
		Description: domain.Some("Whales, NEWS from the deep"),
		Language:    testutil.StringPtr("fr"),
	}))
	all := []*domain.Program{news, docs}

	published := domain.ProgramStatusPublished
	tests := []struct {
		name    string
		filters domain.ProgramFilters
		want    []*domain.Program
	}{
		{"no filters", domain.ProgramFilters{}, all},
		{"status", domain.ProgramFilters{Status: &published}, []*domain.Program{news}},
		{"type", domain.ProgramFilters{Type: &series}, []*domain.Program{docs}},
		{"language", domain.ProgramFilters{Language: testutil.StringPtr("fr")}, []*domain.Program{docs}},
		{"search matches slug and description", domain.ProgramFilters{Search: testutil.StringPtr("News")}, all},
		{"search and status", domain.ProgramFilters{Search: testutil.StringPtr("news"), Status: &published}, []*domain.Program{news}},
		{"search misses", domain.ProgramFilters{Search: testutil.StringPtr("jazz")}, []*domain.Program{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := specification.Filter(all, domain.ProgramFilterSpecification(tt.filters))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpisodeFilterSpecification(t *testing.T) {
	programID := uuid.New()
	pilot := testutil.CreateTestEpisode(t, programID, "pilot")
	other := testutil.CreateTestEpisode(t, uuid.New(), "finale")
	require.NoError(t, other.ChangeStatus(domain.EpisodeChangeStatusInput{Status: domain.EpisodeStatusHidden}))
	all := []*domain.Episode{pilot, other}

	hidden := domain.EpisodeStatusHidden
	video := domain.EpisodeKindVideo

	assert.Equal(t, []*domain.Episode{pilot}, specification.Filter(all, domain.EpisodeFilterSpecification(domain.EpisodeFilters{ProgramID: &programID})))
	assert.Equal(t, []*domain.Episode{other}, specification.Filter(all, domain.EpisodeFilterSpecification(domain.EpisodeFilters{Status: &hidden})))
	assert.Empty(t, specification.Filter(all, domain.EpisodeFilterSpecification(domain.EpisodeFilters{Kind: &video})))
	assert.Equal(t, []*domain.Episode{other}, specification.Filter(all, domain.EpisodeFilterSpecification(domain.EpisodeFilters{Search: testutil.StringPtr("FINALE")})))
}
