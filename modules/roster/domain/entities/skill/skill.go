package skill

import (
	"strings"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryProduct   Category = "product"
	CategorySoft      Category = "soft"
	CategoryLanguage  Category = "language"
)

// DefaultLevel is assigned to assignments synthesized during bulk edit.
const DefaultLevel = 3

// Assignment links a named skill to an employee. Two employees hold separate
// Assignment instances for "the same" skill; identity for matching purposes is
// the name, case-insensitively, never the id.
type Assignment struct {
	id       uuid.UUID
	name     string
	category Category
	level    int
	verified bool
}

func New(name string, category Category, level int) Assignment {
	return Assignment{
		id:       uuid.New(),
		name:     strings.TrimSpace(name),
		category: category,
		level:    level,
	}
}

func Hydrate(id uuid.UUID, name string, category Category, level int, verified bool) Assignment {
	return Assignment{
		id:       id,
		name:     strings.TrimSpace(name),
		category: category,
		level:    level,
		verified: verified,
	}
}

func (a Assignment) ID() uuid.UUID      { return a.id }
func (a Assignment) Name() string       { return a.name }
func (a Assignment) Category() Category { return a.category }
func (a Assignment) Level() int         { return a.level }
func (a Assignment) Verified() bool     { return a.verified }
func (a Assignment) IsZero() bool       { return a.id == uuid.Nil && a.name == "" }

// SameName is the single identity rule every code path resolving skills must
// share. Drawer forms and bulk edit both go through it, otherwise they would
// silently mint duplicate assignments with different ids for one name.
func (a Assignment) SameName(name string) bool {
	return strings.EqualFold(a.name, strings.TrimSpace(name))
}
