package scheme

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Assignment is a work-scheme assignment. An employee holds at most one
// current assignment plus an ordered history of past ones.
type Assignment struct {
	id            uuid.UUID
	name          string
	effectiveFrom time.Time
	effectiveTo   *time.Time
}

func New(name string, effectiveFrom time.Time) Assignment {
	return Assignment{
		id:            uuid.New(),
		name:          strings.TrimSpace(name),
		effectiveFrom: effectiveFrom,
	}
}

func Hydrate(id uuid.UUID, name string, effectiveFrom time.Time, effectiveTo *time.Time) Assignment {
	return Assignment{
		id:            id,
		name:          strings.TrimSpace(name),
		effectiveFrom: effectiveFrom,
		effectiveTo:   effectiveTo,
	}
}

func (a Assignment) ID() uuid.UUID            { return a.id }
func (a Assignment) Name() string             { return a.name }
func (a Assignment) EffectiveFrom() time.Time { return a.effectiveFrom }
func (a Assignment) EffectiveTo() *time.Time  { return a.effectiveTo }
func (a Assignment) IsZero() bool             { return a.id == uuid.Nil && a.name == "" }

// Closed returns a copy with the effective-to date set, used when an
// assignment is displaced into history.
func (a Assignment) Closed(at time.Time) Assignment {
	closed := a
	closed.effectiveTo = &at
	return closed
}
