package domain

// ProgramStatus is the lifecycle state of a Program.
type ProgramStatus string

const (
	ProgramStatusDraft     ProgramStatus = "draft"
	ProgramStatusPublished ProgramStatus = "published"
	ProgramStatusArchived  ProgramStatus = "archived"
)

// IsValid reports whether s is a known program status.
func (s ProgramStatus) IsValid() bool {
	switch s {
	case ProgramStatusDraft, ProgramStatusPublished, ProgramStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s ProgramStatus) CanTransitionTo(target ProgramStatus) bool {
	for _, allowed := range programTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s accepts no further transitions.
func (s ProgramStatus) IsTerminal() bool {
	return len(programTransitions[s]) == 0
}

var programTransitions = map[ProgramStatus][]ProgramStatus{
	ProgramStatusDraft:     {ProgramStatusPublished, ProgramStatusArchived},
	ProgramStatusPublished: {ProgramStatusArchived},
	ProgramStatusArchived:  nil,
}

// ProgramType classifies a Program.
type ProgramType string

const (
	ProgramTypePodcast     ProgramType = "podcast"
	ProgramTypeDocumentary ProgramType = "documentary"
	ProgramTypeYouTube     ProgramType = "youtube"
	ProgramTypeSeries      ProgramType = "series"
)

// IsValid reports whether t is a known program type.
func (t ProgramType) IsValid() bool {
	switch t {
	case ProgramTypePodcast, ProgramTypeDocumentary, ProgramTypeYouTube, ProgramTypeSeries:
		return true
	}
	return false
}

// EpisodeStatus is the lifecycle state of an Episode.
type EpisodeStatus string

const (
	EpisodeStatusDraft     EpisodeStatus = "draft"
	EpisodeStatusPublished EpisodeStatus = "published"
	EpisodeStatusHidden    EpisodeStatus = "hidden"
)

// IsValid reports whether s is a known episode status.
func (s EpisodeStatus) IsValid() bool {
	switch s {
	case EpisodeStatusDraft, EpisodeStatusPublished, EpisodeStatusHidden:
		return true
	}
	return false
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s EpisodeStatus) CanTransitionTo(target EpisodeStatus) bool {
	for _, allowed := range episodeTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s accepts no further transitions.
func (s EpisodeStatus) IsTerminal() bool {
	return len(episodeTransitions[s]) == 0
}

// Published and hidden episodes never return to draft.
var episodeTransitions = map[EpisodeStatus][]EpisodeStatus{
	EpisodeStatusDraft:     {EpisodeStatusPublished, EpisodeStatusHidden},
	EpisodeStatusPublished: {EpisodeStatusHidden},
	EpisodeStatusHidden:    nil,
}

// EpisodeKind is the media kind of an Episode. It is fixed at creation.
type EpisodeKind string

const (
	EpisodeKindAudio EpisodeKind = "audio"
	EpisodeKindVideo EpisodeKind = "video"
)

// IsValid reports whether k is a known episode kind.
func (k EpisodeKind) IsValid() bool {
	return k == EpisodeKindAudio || k == EpisodeKindVideo
}
