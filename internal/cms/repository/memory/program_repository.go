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

type programSlot struct {
	program domain.Program
	seq     uint64
}

// ProgramRepository keeps programs in memory with a slug index.
type ProgramRepository struct {
	mu       sync.RWMutex
	programs map[uuid.UUID]programSlot
	bySlug   map[string]uuid.UUID
	seq      uint64
	logger   interfaces.Logger
}

// NewProgramRepository creates an empty repository.
func NewProgramRepository(logger interfaces.Logger) *ProgramRepository {
	return &ProgramRepository{
		programs: make(map[uuid.UUID]programSlot),
		bySlug:   make(map[string]uuid.UUID),
		logger:   logger,
	}
}

var _ domain.ProgramRepository = (*ProgramRepository)(nil)

// Save stores a copy of program without its pending events.
func (r *ProgramRepository) Save(ctx context.Context, program *domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := program.ID()
	slug := program.Slug()

	if owner, ok := r.bySlug[slug]; ok && owner != id {
		if r.liveSlugOwner(slug, owner) {
			return domain.ErrProgramSlugTaken(slug)
		}
		delete(r.bySlug, slug)
	}

	slot, exists := r.programs[id]
	if exists {
		if old := slot.program.Slug(); old != slug && r.bySlug[old] == id {
			delete(r.bySlug, old)
		}
	} else {
		r.seq++
		slot.seq = r.seq
	}

	slot.program = *program.CloneWithoutEvents()
	r.programs[id] = slot
	r.bySlug[slug] = id
	return nil
}

// FindByID returns a copy of the stored program.
func (r *ProgramRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.programs[id]
	if !ok {
		return nil, domain.ErrProgramNotFound(id)
	}
	return slot.program.Clone(), nil
}

// FindBySlug resolves slug through the index. Stale entries are dropped.
func (r *ProgramRepository) FindBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	program, ok := r.lookupSlug(slug)
	if !ok {
		return nil, domain.ErrProgramSlugNotFound(slug)
	}
	return program, nil
}

// ExistsBySlug reports whether slug belongs to a program other than excludeID.
func (r *ProgramRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	program, ok := r.lookupSlug(slug)
	if !ok {
		return false, nil
	}
	if excludeID != nil && program.ID() == *excludeID {
		return false, nil
	}
	return true, nil
}

// FindMany filters in insertion order and returns the requested page with the filtered total.
func (r *ProgramRepository) FindMany(ctx context.Context, filters domain.ProgramFilters, page pagination.Params) ([]*domain.Program, int, error) {
	r.mu.RLock()
	slots := make([]programSlot, 0, len(r.programs))
	for _, slot := range r.programs {
		slots = append(slots, slot)
	}
	r.mu.RUnlock()

	sort.Slice(slots, func(i, j int) bool { return slots[i].seq < slots[j].seq })

	candidates := make([]*domain.Program, len(slots))
	for i := range slots {
		candidates[i] = slots[i].program.Clone()
	}

	matched := specification.Filter(candidates, domain.ProgramFilterSpecification(filters))
	return pagination.Page(matched, page), len(matched), nil
}

// Delete removes the program and its slug entry.
func (r *ProgramRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.programs[id]
	if !ok {
		return false, nil
	}
	if slug := slot.program.Slug(); r.bySlug[slug] == id {
		delete(r.bySlug, slug)
	}
	delete(r.programs, id)
	return true, nil
}

// Count returns the number of stored programs.
func (r *ProgramRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.programs)
}

func (r *ProgramRepository) lookupSlug(slug string) (*domain.Program, bool) {
	r.mu.RLock()
	id, indexed := r.bySlug[slug]
	if !indexed {
		r.mu.RUnlock()
		return nil, false
	}
	if r.liveSlugOwner(slug, id) {
		slot := r.programs[id]
		r.mu.RUnlock()
		return slot.program.Clone(), true
	}
	r.mu.RUnlock()

	r.healSlug(slug, id)
	return nil, false
}

// healSlug drops slug -> id unless it became valid again in the meantime.
func (r *ProgramRepository) healSlug(slug string, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.bySlug[slug]; !ok || current != id || r.liveSlugOwner(slug, id) {
		return
	}
	delete(r.bySlug, slug)
	r.logger.Warn("Removed stale program slug index entry",
		interfaces.String("slug", slug),
		interfaces.String("program_id", id.String()))
}

// liveSlugOwner must be called with the lock held.
func (r *ProgramRepository) liveSlugOwner(slug string, id uuid.UUID) bool {
	slot, ok := r.programs[id]
	return ok && slot.program.Slug() == slug
}
