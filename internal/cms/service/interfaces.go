package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
)

// ProgramServiceInterface defines the program use cases.
type ProgramServiceInterface interface {
	CreateProgram(ctx context.Context, input domain.ProgramCreateInput) (*domain.Program, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*domain.Program, error)
	UpdateProgram(ctx context.Context, id uuid.UUID, input domain.ProgramUpdateInput) (*domain.Program, error)
	ChangeProgramStatus(ctx context.Context, id uuid.UUID, input domain.ProgramChangeStatusInput) (*domain.Program, error)
	ListPrograms(ctx context.Context, input ListProgramsInput) (*ProgramList, error)
}

// EpisodeServiceInterface defines the episode use cases.
type EpisodeServiceInterface interface {
	CreateEpisode(ctx context.Context, input domain.EpisodeCreateInput) (*domain.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error)
	UpdateEpisode(ctx context.Context, id uuid.UUID, input domain.EpisodeUpdateInput) (*domain.Episode, error)
	ChangeEpisodeStatus(ctx context.Context, id uuid.UUID, input domain.EpisodeChangeStatusInput) (*domain.Episode, error)
	MoveEpisodeToProgram(ctx context.Context, id uuid.UUID, input domain.EpisodeMoveInput) (*domain.Episode, error)
	ListEpisodes(ctx context.Context, input ListEpisodesInput) (*EpisodeList, error)
}

// DiscoveryServiceInterface defines the catalog search use cases.
type DiscoveryServiceInterface interface {
	SearchCatalog(ctx context.Context, input SearchCatalogInput) (*CatalogSearchResult, error)
}

// Ensure the services implement the interfaces.
var (
	_ ProgramServiceInterface   = (*ProgramService)(nil)
	_ EpisodeServiceInterface   = (*EpisodeService)(nil)
	_ DiscoveryServiceInterface = (*DiscoveryService)(nil)
)
