package domain

import (
	"strings"
	"time"
)

// DefaultLanguage is assigned to programs created without a language.
const DefaultLanguage = "en"

// Optional distinguishes "leave unchanged" from "set to null" in updates.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional that sets v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// ProgramCreateInput carries the fields of a new program.
type ProgramCreateInput struct {
	ID          string      `json:"id" validate:"omitempty,uuid"`
	Title       string      `json:"title" validate:"required,min=10,max=120"`
	Type        ProgramType `json:"type" validate:"required,oneof=podcast documentary youtube series"`
	Slug        string      `json:"slug" validate:"required,max=80,slug"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	Cover       *string     `json:"cover" validate:"omitempty,uuid"`
	Language    string      `json:"language" validate:"omitempty,iso6391"`
}

func (in ProgramCreateInput) normalize() ProgramCreateInput {
	in.Title = strings.TrimSpace(in.Title)
	if in.Language == "" {
		in.Language = DefaultLanguage
	}
	return in
}

// ProgramUpdateInput carries a partial program update. Nil or unset fields are left untouched.
type ProgramUpdateInput struct {
	Title       *string
	Type        *ProgramType
	Description Optional[string]
	Cover       Optional[string]
	Language    *string
}

// IsEmpty reports whether the update changes nothing.
func (in ProgramUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Type == nil && !in.Description.Set && !in.Cover.Set && in.Language == nil
}

// ProgramChangeStatusInput requests a program transition.
type ProgramChangeStatusInput struct {
	Status      ProgramStatus `json:"status"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
}

// EpisodeCreateInput carries the fields of a new episode.
type EpisodeCreateInput struct {
	ID          string      `json:"id" validate:"omitempty,uuid"`
	ProgramID   string      `json:"program_id" validate:"required,uuid"`
	Title       string      `json:"title" validate:"required,min=10,max=120"`
	Slug        string      `json:"slug" validate:"required,max=80,slug"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	Kind        EpisodeKind `json:"kind" validate:"required,oneof=audio video"`
	Source      string      `json:"source" validate:"required,uuid"`
	Cover       *string     `json:"cover" validate:"omitempty,uuid"`
	Transcripts []string    `json:"transcripts" validate:"omitempty,dive,uuid"`
}

func (in EpisodeCreateInput) normalize() EpisodeCreateInput {
	in.Title = strings.TrimSpace(in.Title)
	return in
}

// EpisodeUpdateInput carries a partial episode update. Kind and source cannot change.
type EpisodeUpdateInput struct {
	Title       *string
	Description Optional[string]
	Cover       Optional[string]
	Transcripts Optional[[]string]
}

// IsEmpty reports whether the update changes nothing.
func (in EpisodeUpdateInput) IsEmpty() bool {
	return in.Title == nil && !in.Description.Set && !in.Cover.Set && !in.Transcripts.Set
}

// EpisodeChangeStatusInput requests an episode transition.
type EpisodeChangeStatusInput struct {
	Status      EpisodeStatus `json:"status"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
}

// EpisodeMoveInput relocates an episode, possibly under a new slug.
type EpisodeMoveInput struct {
	ProgramID string `json:"program_id" validate:"required,uuid"`
	Slug      string `json:"slug" validate:"required,max=80,slug"`
}
