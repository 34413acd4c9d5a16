package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// ProgramFilters narrows a program listing. Zero values match everything.
type ProgramFilters struct {
	Status   *ProgramStatus
	Type     *ProgramType
	Language *string
	Search   *string
}

// EpisodeFilters narrows an episode listing. Zero values match everything.
type EpisodeFilters struct {
	Status    *EpisodeStatus
	Kind      *EpisodeKind
	ProgramID *uuid.UUID
	Search    *string
}

// ProgramRepository stores programs and their slug index.
type ProgramRepository interface {
	// Save inserts or replaces the program. A slug owned by another program is a conflict.
	Save(ctx context.Context, program *Program) error
	// FindByID returns a copy of the program or a not found error.
	FindByID(ctx context.Context, id uuid.UUID) (*Program, error)
	// FindBySlug resolves the slug index.
	FindBySlug(ctx context.Context, slug string) (*Program, error)
	// ExistsBySlug reports whether a program other than excludeID owns slug.
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	// FindMany returns one page of matching programs and the filtered total.
	FindMany(ctx context.Context, filters ProgramFilters, page pagination.Params) ([]*Program, int, error)
	// Delete removes the program and its index entries.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// EpisodeRepository stores episodes with their per-program slug and grouping indexes.
type EpisodeRepository interface {
	// Save inserts or replaces the episode. A slug owned by another episode of the same program is a conflict.
	Save(ctx context.Context, episode *Episode) error
	// FindByID returns a copy of the episode or a not found error.
	FindByID(ctx context.Context, id uuid.UUID) (*Episode, error)
	// FindBySlugInProgram resolves the program_id:slug index.
	FindBySlugInProgram(ctx context.Context, programID uuid.UUID, slug string) (*Episode, error)
	// FindByProgram returns every episode of the program.
	FindByProgram(ctx context.Context, programID uuid.UUID) ([]*Episode, error)
	// ExistsBySlugInProgram reports whether an episode other than excludeID owns slug in the program.
	ExistsBySlugInProgram(ctx context.Context, programID uuid.UUID, slug string, excludeID *uuid.UUID) (bool, error)
	// FindMany returns one page of matching episodes and the filtered total.
	FindMany(ctx context.Context, filters EpisodeFilters, page pagination.Params) ([]*Episode, int, error)
	// Delete removes the episode and its index entries.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
