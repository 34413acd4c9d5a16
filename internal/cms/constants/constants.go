package constants

const (
	// Search index names.
	ProgramsIndex = "programs"
	EpisodesIndex = "episodes"

	// Listing constants.
	MaxSearchLength = 100
	DefaultPageSize = 20
	MaxPageSize     = 100
)
