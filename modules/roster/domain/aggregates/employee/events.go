package employee

import (
	"time"

	"github.com/google/uuid"
)

// CollectionChangedEvent is published after every commit of the roster
// collection. Subscribers that hold record ids (selection state, caches)
// reconcile against Current.
type CollectionChangedEvent struct {
	Current []uuid.UUID
}

func NewCollectionChangedEvent(records []Employee) *CollectionChangedEvent {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	return &CollectionChangedEvent{Current: ids}
}

// BulkAppliedEvent is published once per successful batch mutation.
type BulkAppliedEvent struct {
	Affected []uuid.UUID
	Actor    string
	At       time.Time
}

func NewBulkAppliedEvent(patched []Employee, actor string, at time.Time) *BulkAppliedEvent {
	ids := make([]uuid.UUID, 0, len(patched))
	for _, r := range patched {
		ids = append(ids, r.ID())
	}
	return &BulkAppliedEvent{Affected: ids, Actor: actor, At: at}
}

// TagDeletedEvent is published after a catalog tag deletion cascaded through
// the collection.
type TagDeletedEvent struct {
	Tag      string
	Affected int
}
