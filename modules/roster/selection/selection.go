// Package selection tracks which roster records are picked for a batch
// mutation. Two invariants hold at all times: the set is empty whenever
// selection mode is disabled, and the set never references a record absent
// from the backing collection.
package selection

import (
	"sort"

	"github.com/google/uuid"

	"github.com/iota-uz/roster/pkg/serrors"
)

var ErrSelectionDisabled = serrors.NewError("SELECTION_DISABLED", "selection mode is not active", "")

type Selection struct {
	enabled bool
	ids     map[uuid.UUID]struct{}
}

func New() *Selection {
	return &Selection{ids: map[uuid.UUID]struct{}{}}
}

func (s *Selection) Enabled() bool {
	return s.enabled
}

// Enable switches selection mode on with an empty set. Enabling twice is a
// no-op and keeps the current set.
func (s *Selection) Enable() {
	if s.enabled {
		return
	}
	s.enabled = true
	s.ids = map[uuid.UUID]struct{}{}
}

// Disable discards the set and returns the discarded ids so the caller can
// announce how many picks were dropped.
func (s *Selection) Disable() []uuid.UUID {
	if !s.enabled {
		return nil
	}
	discarded := s.IDs()
	s.enabled = false
	s.ids = map[uuid.UUID]struct{}{}
	return discarded
}

func (s *Selection) Toggle(id uuid.UUID) error {
	if !s.enabled {
		return ErrSelectionDisabled
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	return nil
}

func (s *Selection) SelectAll(visible []uuid.UUID) error {
	if !s.enabled {
		return ErrSelectionDisabled
	}
	s.ids = make(map[uuid.UUID]struct{}, len(visible))
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
	return nil
}

func (s *Selection) Clear() error {
	if !s.enabled {
		return ErrSelectionDisabled
	}
	s.ids = map[uuid.UUID]struct{}{}
	return nil
}

// Prune intersects the set with the current collection ids. It runs on every
// collection change regardless of state, dropping vanished records silently.
func (s *Selection) Prune(current []uuid.UUID) {
	if len(s.ids) == 0 {
		return
	}
	keep := make(map[uuid.UUID]struct{}, len(s.ids))
	for _, id := range current {
		if _, ok := s.ids[id]; ok {
			keep[id] = struct{}{}
		}
	}
	s.ids = keep
}

func (s *Selection) Contains(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids sorted by string form, so iteration order is
// deterministic.
func (s *Selection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
