package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

var episodeEventTypes = []string{domain.EventTypeEpisodePublished, domain.EventTypeEpisodeHidden}

// EpisodeService handles episode use cases
type EpisodeService struct {
	episodes domain.EpisodeRepository
	programs domain.ProgramRepository
	eventBus interfaces.EventBus
	logger   interfaces.Logger
	list     ListConfig
}

// NewEpisodeService creates a new episode service
func NewEpisodeService(
	episodes domain.EpisodeRepository,
	programs domain.ProgramRepository,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
	list ListConfig,
) *EpisodeService {
	return &EpisodeService{
		episodes: episodes,
		programs: programs,
		eventBus: eventBus,
		logger:   logger,
		list:     list,
	}
}

// CreateEpisode validates and stores a new draft episode in an existing program
func (s *EpisodeService) CreateEpisode(ctx context.Context, input domain.EpisodeCreateInput) (*domain.Episode, error) {
	episode, err := domain.NewEpisode(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.programs.FindByID(ctx, episode.ProgramID()); err != nil {
		return nil, err
	}

	taken, err := s.episodes.ExistsBySlugInProgram(ctx, episode.ProgramID(), episode.Slug(), nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEpisodeSlugTaken(episode.ProgramID(), episode.Slug())
	}

	if err := s.episodes.Save(ctx, episode); err != nil {
		s.logger.Error("Failed to save episode", interfaces.Error(err))
		return nil, err
	}

	s.logger.Info("Episode created",
		interfaces.String("id", episode.ID().String()),
		interfaces.String("program_id", episode.ProgramID().String()),
		interfaces.String("slug", episode.Slug()))

	return episode, nil
}

// GetEpisode retrieves an episode by ID
func (s *EpisodeService) GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	return s.episodes.FindByID(ctx, id)
}

// UpdateEpisode applies a partial update
func (s *EpisodeService) UpdateEpisode(ctx context.Context, id uuid.UUID, input domain.EpisodeUpdateInput) (*domain.Episode, error) {
	episode, err := s.episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := episode.Update(input); err != nil {
		return nil, err
	}

	if err := s.episodes.Save(ctx, episode); err != nil {
		return nil, err
	}

	s.logger.Info("Episode updated", interfaces.String("id", id.String()))
	return episode, nil
}

// ChangeEpisodeStatus transitions the episode, stores it and publishes the episode events it raised
func (s *EpisodeService) ChangeEpisodeStatus(ctx context.Context, id uuid.UUID, input domain.EpisodeChangeStatusInput) (*domain.Episode, error) {
	episode, err := s.episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := episode.Status()
	if err := episode.ChangeStatus(input); err != nil {
		return nil, err
	}

	if err := s.episodes.Save(ctx, episode); err != nil {
		return nil, err
	}

	if err := publishOwned(ctx, s.eventBus, episode, episodeEventTypes...); err != nil {
		s.logger.Error("Failed to publish episode events",
			interfaces.String("id", id.String()),
			interfaces.Error(err))
		return nil, err
	}

	if previous != episode.Status() {
		s.logger.Info("Episode status changed",
			interfaces.String("id", id.String()),
			interfaces.String("from", string(previous)),
			interfaces.String("to", string(episode.Status())))
	}

	return episode, nil
}

// MoveEpisodeToProgram reassigns the episode to another program under the given slug
func (s *EpisodeService) MoveEpisodeToProgram(ctx context.Context, id uuid.UUID, input domain.EpisodeMoveInput) (*domain.Episode, error) {
	episode, err := s.episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := episode.ProgramID()
	if err := episode.MoveToProgram(input); err != nil {
		return nil, err
	}
	target := episode.ProgramID()

	if _, err := s.programs.FindByID(ctx, target); err != nil {
		if errors.IsNotFound(err) {
			return nil, domain.ErrTargetProgramNotFound(target)
		}
		return nil, err
	}

	taken, err := s.episodes.ExistsBySlugInProgram(ctx, target, episode.Slug(), &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEpisodeSlugTaken(target, episode.Slug())
	}

	if err := s.episodes.Save(ctx, episode); err != nil {
		return nil, err
	}

	s.logger.Info("Episode moved",
		interfaces.String("id", id.String()),
		interfaces.String("from_program_id", from.String()),
		interfaces.String("to_program_id", target.String()),
		interfaces.String("slug", episode.Slug()))

	return episode, nil
}

// ListEpisodes returns one filtered page of episodes
func (s *EpisodeService) ListEpisodes(ctx context.Context, input ListEpisodesInput) (*EpisodeList, error) {
	filters, err := input.filters()
	if err != nil {
		return nil, err
	}
	params, err := s.list.params(input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	items, total, err := s.episodes.FindMany(ctx, filters, params)
	if err != nil {
		return nil, err
	}

	return &EpisodeList{Items: items, Meta: pagination.NewMeta(params, total)}, nil
}
