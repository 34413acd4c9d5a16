package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/cms/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

type episodeSlot struct {
	episode domain.Episode
	seq     uint64
}

// EpisodeRepository keeps episodes in memory, indexed by program_id:slug and grouped by program.
type EpisodeRepository struct {
	mu            sync.RWMutex
	episodes      map[uuid.UUID]episodeSlot
	byProgramSlug map[string]uuid.UUID
	byProgram     map[uuid.UUID]map[uuid.UUID]struct{}
	seq           uint64
	logger        interfaces.Logger
}

// NewEpisodeRepository creates an empty repository.
func NewEpisodeRepository(logger interfaces.Logger) *EpisodeRepository {
	return &EpisodeRepository{
		episodes:      make(map[uuid.UUID]episodeSlot),
		byProgramSlug: make(map[string]uuid.UUID),
		byProgram:     make(map[uuid.UUID]map[uuid.UUID]struct{}),
		logger:        logger,
	}
}

var _ domain.EpisodeRepository = (*EpisodeRepository)(nil)

func programSlugKey(programID uuid.UUID, slug string) string {
	return programID.String() + ":" + slug
}

// Save stores a copy of episode without its pending events, moving its index entries
// when program or slug changed.
func (r *EpisodeRepository) Save(ctx context.Context, episode *domain.Episode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := episode.ID()
	programID := episode.ProgramID()
	slug := episode.Slug()
	key := programSlugKey(programID, slug)

	if owner, ok := r.byProgramSlug[key]; ok && owner != id {
		if r.liveSlugOwner(programID, slug, owner) {
			return domain.ErrEpisodeSlugTaken(programID, slug)
		}
		delete(r.byProgramSlug, key)
	}

	slot, exists := r.episodes[id]
	if exists {
		oldProgram, oldSlug := slot.episode.ProgramID(), slot.episode.Slug()
		if oldKey := programSlugKey(oldProgram, oldSlug); oldKey != key && r.byProgramSlug[oldKey] == id {
			delete(r.byProgramSlug, oldKey)
		}
		if oldProgram != programID {
			r.removeFromGroup(oldProgram, id)
		}
	} else {
		r.seq++
		slot.seq = r.seq
	}

	slot.episode = *episode.CloneWithoutEvents()
	r.episodes[id] = slot
	r.byProgramSlug[key] = id
	group, ok := r.byProgram[programID]
	if !ok {
		group = make(map[uuid.UUID]struct{})
		r.byProgram[programID] = group
	}
	group[id] = struct{}{}
	return nil
}

// FindByID returns a copy of the stored episode.
func (r *EpisodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.episodes[id]
	if !ok {
		return nil, domain.ErrEpisodeNotFound(id)
	}
	return slot.episode.Clone(), nil
}

// FindBySlugInProgram resolves the composite index. Stale entries are dropped.
func (r *EpisodeRepository) FindBySlugInProgram(ctx context.Context, programID uuid.UUID, slug string) (*domain.Episode, error) {
	episode, ok := r.lookupSlug(programID, slug)
	if !ok {
		return nil, domain.ErrEpisodeSlugNotFound(programID, slug)
	}
	return episode, nil
}

// FindByProgram returns the program's episodes in insertion order.
// Group members that no longer belong to the program are pruned.
func (r *EpisodeRepository) FindByProgram(ctx context.Context, programID uuid.UUID) ([]*domain.Episode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var slots []episodeSlot
	var stale []uuid.UUID
	for id := range r.byProgram[programID] {
		slot, ok := r.episodes[id]
		if !ok || slot.episode.ProgramID() != programID {
			stale = append(stale, id)
			continue
		}
		slots = append(slots, slot)
	}
	r.mu.RUnlock()

	if len(stale) > 0 {
		r.healGroup(programID, stale)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].seq < slots[j].seq })
	out := make([]*domain.Episode, len(slots))
	for i := range slots {
		out[i] = slots[i].episode.Clone()
	}
	return out, nil
}

// ExistsBySlugInProgram reports whether slug is taken in the program by an episode other than excludeID.
func (r *EpisodeRepository) ExistsBySlugInProgram(ctx context.Context, programID uuid.UUID, slug string, excludeID *uuid.UUID) (bool, error) {
	episode, ok := r.lookupSlug(programID, slug)
	if !ok {
		return false, nil
	}
	if excludeID != nil && episode.ID() == *excludeID {
		return false, nil
	}
	return true, nil
}

// FindMany filters in insertion order and returns the requested page with the filtered total.
func (r *EpisodeRepository) FindMany(ctx context.Context, filters domain.EpisodeFilters, page pagination.Params) ([]*domain.Episode, int, error) {
	var candidates []*domain.Episode
	if filters.ProgramID != nil {
		var err error
		if candidates, err = r.FindByProgram(ctx, *filters.ProgramID); err != nil {
			return nil, 0, err
		}
	} else {
		r.mu.RLock()
		slots := make([]episodeSlot, 0, len(r.episodes))
		for _, slot := range r.episodes {
			slots = append(slots, slot)
		}
		r.mu.RUnlock()

		sort.Slice(slots, func(i, j int) bool { return slots[i].seq < slots[j].seq })
		candidates = make([]*domain.Episode, len(slots))
		for i := range slots {
			candidates[i] = slots[i].episode.Clone()
		}
	}

	matched := specification.Filter(candidates, domain.EpisodeFilterSpecification(filters))
	return pagination.Page(matched, page), len(matched), nil
}

// Delete removes the episode from the primary map and every index.
func (r *EpisodeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.episodes[id]
	if !ok {
		return false, nil
	}
	programID := slot.episode.ProgramID()
	if key := programSlugKey(programID, slot.episode.Slug()); r.byProgramSlug[key] == id {
		delete(r.byProgramSlug, key)
	}
	r.removeFromGroup(programID, id)
	delete(r.episodes, id)
	return true, nil
}

// Count returns the number of stored episodes.
func (r *EpisodeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.episodes)
}

func (r *EpisodeRepository) lookupSlug(programID uuid.UUID, slug string) (*domain.Episode, bool) {
	key := programSlugKey(programID, slug)

	r.mu.RLock()
	id, indexed := r.byProgramSlug[key]
	if !indexed {
		r.mu.RUnlock()
		return nil, false
	}
	if r.liveSlugOwner(programID, slug, id) {
		slot := r.episodes[id]
		r.mu.RUnlock()
		return slot.episode.Clone(), true
	}
	r.mu.RUnlock()

	r.healSlug(programID, slug, id)
	return nil, false
}

func (r *EpisodeRepository) healSlug(programID uuid.UUID, slug string, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := programSlugKey(programID, slug)
	if current, ok := r.byProgramSlug[key]; !ok || current != id || r.liveSlugOwner(programID, slug, id) {
		return
	}
	delete(r.byProgramSlug, key)
	r.logger.Warn("Removed stale episode slug index entry",
		interfaces.String("program_id", programID.String()),
		interfaces.String("slug", slug),
		interfaces.String("episode_id", id.String()))
}

func (r *EpisodeRepository) healGroup(programID uuid.UUID, ids []uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if slot, ok := r.episodes[id]; ok && slot.episode.ProgramID() == programID {
			continue
		}
		r.removeFromGroup(programID, id)
		r.logger.Warn("Removed stale program grouping entry",
			interfaces.String("program_id", programID.String()),
			interfaces.String("episode_id", id.String()))
	}
}

// removeFromGroup must be called with the write lock held. Empty groups are dropped.
func (r *EpisodeRepository) removeFromGroup(programID, id uuid.UUID) {
	group, ok := r.byProgram[programID]
	if !ok {
		return
	}
	delete(group, id)
	if len(group) == 0 {
		delete(r.byProgram, programID)
	}
}

// liveSlugOwner must be called with the lock held.
func (r *EpisodeRepository) liveSlugOwner(programID uuid.UUID, slug string, id uuid.UUID) bool {
	slot, ok := r.episodes[id]
	return ok && slot.episode.ProgramID() == programID && slot.episode.Slug() == slug
}
