package domain

import (
	"github.com/google/uuid"

	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
)

// ErrProgramNotFound reports an unknown program id.
func ErrProgramNotFound(id uuid.UUID) error {
	return apperrors.NotFoundf("program with ID '%s' not found", id)
}

// ErrTargetProgramNotFound reports an unknown destination program for a move.
func ErrTargetProgramNotFound(id uuid.UUID) error {
	return apperrors.NotFoundf("target program with ID '%s' not found", id)
}

// ErrEpisodeNotFound reports an unknown episode id.
func ErrEpisodeNotFound(id uuid.UUID) error {
	return apperrors.NotFoundf("episode with ID '%s' not found", id)
}

// ErrProgramSlugTaken reports a program slug owned by another program.
func ErrProgramSlugTaken(slug string) error {
	return apperrors.Conflictf("program with slug '%s' already exists", slug)
}

// ErrEpisodeSlugTaken reports an episode slug owned by another episode of the same program.
func ErrEpisodeSlugTaken(programID uuid.UUID, slug string) error {
	return apperrors.Conflictf("episode with slug '%s' already exists in program '%s'", slug, programID)
}

// ErrProgramSlugNotFound reports a slug no program owns.
func ErrProgramSlugNotFound(slug string) error {
	return apperrors.NotFoundf("program with slug '%s' not found", slug)
}

// ErrEpisodeSlugNotFound reports a slug no episode of the program owns.
func ErrEpisodeSlugNotFound(programID uuid.UUID, slug string) error {
	return apperrors.NotFoundf("episode with slug '%s' not found in program '%s'", slug, programID)
}
