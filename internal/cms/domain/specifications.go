package domain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/domain/specification"
)

// ProgramSpecification matches programs.
type ProgramSpecification = specification.Specification[*Program]

// EpisodeSpecification matches episodes.
type EpisodeSpecification = specification.Specification[*Episode]

// ProgramByStatus matches programs in status.
func ProgramByStatus(status ProgramStatus) ProgramSpecification {
	return specification.Func[*Program](func(p *Program) bool { return p.status == status })
}

// ProgramByType matches programs of type t.
func ProgramByType(t ProgramType) ProgramSpecification {
	return specification.Func[*Program](func(p *Program) bool { return p.programType == t })
}

// ProgramByLanguage matches programs in language.
func ProgramByLanguage(language string) ProgramSpecification {
	return specification.Func[*Program](func(p *Program) bool { return p.language == language })
}

// ProgramMatching does a case-insensitive substring match on title, slug and description.
func ProgramMatching(term string) ProgramSpecification {
	needle := strings.ToLower(term)
	return specification.Func[*Program](func(p *Program) bool {
		return containsFold(needle, p.title, p.slug, p.description)
	})
}

// ProgramFilterSpecification combines every set filter.
func ProgramFilterSpecification(f ProgramFilters) ProgramSpecification {
	var specs []ProgramSpecification
	if f.Status != nil {
		specs = append(specs, ProgramByStatus(*f.Status))
	}
	if f.Type != nil {
		specs = append(specs, ProgramByType(*f.Type))
	}
	if f.Language != nil {
		specs = append(specs, ProgramByLanguage(*f.Language))
	}
	if f.Search != nil {
		specs = append(specs, ProgramMatching(*f.Search))
	}
	return specification.And(specs...)
}

// EpisodeByStatus matches episodes in status.
func EpisodeByStatus(status EpisodeStatus) EpisodeSpecification {
	return specification.Func[*Episode](func(e *Episode) bool { return e.status == status })
}

// EpisodeByKind matches audio or video episodes.
func EpisodeByKind(kind EpisodeKind) EpisodeSpecification {
	return specification.Func[*Episode](func(e *Episode) bool { return e.kind == kind })
}

// EpisodeInProgram matches episodes of programID.
func EpisodeInProgram(programID uuid.UUID) EpisodeSpecification {
	return specification.Func[*Episode](func(e *Episode) bool { return e.programID == programID })
}

// EpisodeMatching does a case-insensitive substring match on title, slug and description.
func EpisodeMatching(term string) EpisodeSpecification {
	needle := strings.ToLower(term)
	return specification.Func[*Episode](func(e *Episode) bool {
		return containsFold(needle, e.title, e.slug, e.description)
	})
}

// EpisodeFilterSpecification combines every set filter.
func EpisodeFilterSpecification(f EpisodeFilters) EpisodeSpecification {
	var specs []EpisodeSpecification
	if f.Status != nil {
		specs = append(specs, EpisodeByStatus(*f.Status))
	}
	if f.Kind != nil {
		specs = append(specs, EpisodeByKind(*f.Kind))
	}
	if f.ProgramID != nil {
		specs = append(specs, EpisodeInProgram(*f.ProgramID))
	}
	if f.Search != nil {
		specs = append(specs, EpisodeMatching(*f.Search))
	}
	return specification.And(specs...)
}

func containsFold(needle, title, slug string, description *string) bool {
	if strings.Contains(strings.ToLower(title), needle) || strings.Contains(strings.ToLower(slug), needle) {
		return true
	}
	return description != nil && strings.Contains(strings.ToLower(*description), needle)
}
