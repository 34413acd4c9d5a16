package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

var programEventTypes = []string{domain.EventTypeProgramPublished, domain.EventTypeProgramArchived}

// ProgramService handles program use cases
type ProgramService struct {
	programs domain.ProgramRepository
	eventBus interfaces.EventBus
	logger   interfaces.Logger
	list     ListConfig
}

// NewProgramService creates a new program service
func NewProgramService(
	programs domain.ProgramRepository,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
	list ListConfig,
) *ProgramService {
	return &ProgramService{
		programs: programs,
		eventBus: eventBus,
		logger:   logger,
		list:     list,
	}
}

// CreateProgram validates and stores a new draft program
func (s *ProgramService) CreateProgram(ctx context.Context, input domain.ProgramCreateInput) (*domain.Program, error) {
	program, err := domain.NewProgram(input)
	if err != nil {
		return nil, err
	}

	taken, err := s.programs.ExistsBySlug(ctx, program.Slug(), nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrProgramSlugTaken(program.Slug())
	}

	if err := s.programs.Save(ctx, program); err != nil {
		s.logger.Error("Failed to save program", interfaces.Error(err))
		return nil, err
	}

	s.logger.Info("Program created",
		interfaces.String("id", program.ID().String()),
		interfaces.String("slug", program.Slug()))

	return program, nil
}

// GetProgram retrieves a program by ID
func (s *ProgramService) GetProgram(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	return s.programs.FindByID(ctx, id)
}

// UpdateProgram applies a partial update
func (s *ProgramService) UpdateProgram(ctx context.Context, id uuid.UUID, input domain.ProgramUpdateInput) (*domain.Program, error) {
	program, err := s.programs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := program.Update(input); err != nil {
		return nil, err
	}

	if err := s.programs.Save(ctx, program); err != nil {
		return nil, err
	}

	s.logger.Info("Program updated", interfaces.String("id", id.String()))
	return program, nil
}

// ChangeProgramStatus transitions the program, stores it and publishes the program events it raised
func (s *ProgramService) ChangeProgramStatus(ctx context.Context, id uuid.UUID, input domain.ProgramChangeStatusInput) (*domain.Program, error) {
	program, err := s.programs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := program.Status()
	if err := program.ChangeStatus(input); err != nil {
		return nil, err
	}

	if err := s.programs.Save(ctx, program); err != nil {
		return nil, err
	}

	if err := publishOwned(ctx, s.eventBus, program, programEventTypes...); err != nil {
		s.logger.Error("Failed to publish program events",
			interfaces.String("id", id.String()),
			interfaces.Error(err))
		return nil, err
	}

	if previous != program.Status() {
		s.logger.Info("Program status changed",
			interfaces.String("id", id.String()),
			interfaces.String("from", string(previous)),
			interfaces.String("to", string(program.Status())))
	}

	return program, nil
}

// ListPrograms returns one filtered page of programs
func (s *ProgramService) ListPrograms(ctx context.Context, input ListProgramsInput) (*ProgramList, error) {
	filters, err := input.filters()
	if err != nil {
		return nil, err
	}
	params, err := s.list.params(input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	items, total, err := s.programs.FindMany(ctx, filters, params)
	if err != nil {
		return nil, err
	}

	return &ProgramList{Items: items, Meta: pagination.NewMeta(params, total)}, nil
}
