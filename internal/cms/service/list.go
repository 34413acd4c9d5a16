package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/constants"
	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	"github.com/narwhalmedia/catalog/pkg/validation"
)

// ListConfig bounds list requests.
type ListConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultListConfig returns the standard page sizes.
func DefaultListConfig() ListConfig {
	return ListConfig{DefaultLimit: constants.DefaultPageSize, MaxLimit: constants.MaxPageSize}
}

func (c ListConfig) params(page, limit int) (pagination.Params, error) {
	if limit == 0 && c.DefaultLimit > 0 {
		limit = c.DefaultLimit
	}
	p := pagination.New(page, limit)
	if err := p.Validate(c.MaxLimit); err != nil {
		return pagination.Params{}, err
	}
	return p, nil
}

// ListProgramsInput carries raw program list filters. Nil filters are ignored.
type ListProgramsInput struct {
	Status   *string
	Type     *string
	Language *string
	Search   *string
	Page     int
	Limit    int
}

// ProgramList is one page of programs.
type ProgramList struct {
	Items []*domain.Program
	Meta  pagination.Meta
}

// ListEpisodesInput carries raw episode list filters. Nil filters are ignored.
type ListEpisodesInput struct {
	Status    *string
	Kind      *string
	ProgramID *string
	Search    *string
	Page      int
	Limit     int
}

// EpisodeList is one page of episodes.
type EpisodeList struct {
	Items []*domain.Episode
	Meta  pagination.Meta
}

func (in ListProgramsInput) filters() (domain.ProgramFilters, error) {
	var f domain.ProgramFilters
	if in.Status != nil {
		status := domain.ProgramStatus(*in.Status)
		if !status.IsValid() {
			return f, errors.BadRequest(fmt.Sprintf("status: unknown program status '%s'", *in.Status))
		}
		f.Status = &status
	}
	if in.Type != nil {
		t := domain.ProgramType(*in.Type)
		if !t.IsValid() {
			return f, errors.BadRequest(fmt.Sprintf("type: unknown program type '%s'", *in.Type))
		}
		f.Type = &t
	}
	if in.Language != nil {
		if !validation.IsLanguageCode(*in.Language) {
			return f, errors.BadRequest("language: must be a valid ISO-639-1 language code")
		}
		language := *in.Language
		f.Language = &language
	}
	search, err := searchTerm(in.Search)
	if err != nil {
		return f, err
	}
	f.Search = search
	return f, nil
}

func (in ListEpisodesInput) filters() (domain.EpisodeFilters, error) {
	var f domain.EpisodeFilters
	if in.Status != nil {
		status := domain.EpisodeStatus(*in.Status)
		if !status.IsValid() {
			return f, errors.BadRequest(fmt.Sprintf("status: unknown episode status '%s'", *in.Status))
		}
		f.Status = &status
	}
	if in.Kind != nil {
		kind := domain.EpisodeKind(*in.Kind)
		if !kind.IsValid() {
			return f, errors.BadRequest(fmt.Sprintf("kind: unknown episode kind '%s'", *in.Kind))
		}
		f.Kind = &kind
	}
	if in.ProgramID != nil {
		programID, err := uuid.Parse(*in.ProgramID)
		if err != nil {
			return f, errors.BadRequest("program_id: must be a valid UUID")
		}
		f.ProgramID = &programID
	}
	search, err := searchTerm(in.Search)
	if err != nil {
		return f, err
	}
	f.Search = search
	return f, nil
}

func searchTerm(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	term := strings.TrimSpace(*raw)
	if term == "" {
		return nil, errors.BadRequest("search: must not be empty")
	}
	if utf8.RuneCountInString(term) > constants.MaxSearchLength {
		return nil, errors.BadRequest(fmt.Sprintf("search: must be at most %d characters", constants.MaxSearchLength))
	}
	return &term, nil
}
