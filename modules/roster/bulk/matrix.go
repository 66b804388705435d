// Package bulk implements the batch-mutation core: a per-field action matrix
// validated as a whole and applied to a target subset of the roster with
// type-appropriate merge semantics per field.
//
// The two-phase shape matters: Compile performs every validation and
// reference resolution up front and yields a Plan; Plan.Apply is a pure
// function that cannot fail.
package bulk

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/modules/roster/domain/entities/scheme"
	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
	"github.com/iota-uz/roster/modules/roster/domain/entities/team"
)

type Action string

const (
	ActionNone    Action = "none"
	ActionAdd     Action = "add"
	ActionReplace Action = "replace"
	ActionRemove  Action = "remove"
)

// Field names used in validation errors.
const (
	FieldStatus        = "status"
	FieldTeam          = "team"
	FieldHourNorm      = "hourNorm"
	FieldWorkScheme    = "workScheme"
	FieldSkills        = "skills"
	FieldReserveSkills = "reserveSkills"
	FieldTags          = "tags"
)

// StatusChange is a single-slot overwrite; only replace is meaningful.
type StatusChange struct {
	Action Action
	Value  employee.Status
}

// RefChange carries an id that must resolve against a known entity set.
type RefChange struct {
	Action Action
	ID     uuid.UUID
}

// NumberChange carries the raw user input; parsing happens at compile time.
type NumberChange struct {
	Action Action
	Value  string
}

// ListChange carries free-text names for the list-valued fields.
type ListChange struct {
	Action Action
	Values []string
}

func (c StatusChange) active() bool { return c.Action != "" && c.Action != ActionNone }
func (c RefChange) active() bool    { return c.Action != "" && c.Action != ActionNone }
func (c NumberChange) active() bool { return c.Action != "" && c.Action != ActionNone }
func (c ListChange) active() bool   { return c.Action != "" && c.Action != ActionNone }

// Matrix is one field action per editable field plus an optional free-text
// comment appended to every target record as a task entry. Fields are
// explicit struct members rather than a name-indexed map so each field's
// merge rule is dispatched statically.
type Matrix struct {
	Status        StatusChange
	Team          RefChange
	HourNorm      NumberChange
	WorkScheme    RefChange
	Skills        ListChange
	ReserveSkills ListChange
	Tags          ListChange

	Comment string
}

// IsEmpty reports whether the matrix carries no action and no comment.
func (m Matrix) IsEmpty() bool {
	return !m.Status.active() &&
		!m.Team.active() &&
		!m.HourNorm.active() &&
		!m.WorkScheme.active() &&
		!m.Skills.active() &&
		!m.ReserveSkills.active() &&
		!m.Tags.active() &&
		strings.TrimSpace(m.Comment) == ""
}

// Env supplies the reference sets a matrix resolves against and the fallback
// categories for skills synthesized during apply.
type Env struct {
	Teams   map[uuid.UUID]team.Team
	Schemes map[uuid.UUID]scheme.Assignment

	SkillCategory        skill.Category
	ReserveSkillCategory skill.Category
}

// normalizeList trims entries, drops empties and deduplicates
// case-insensitively keeping the first-seen spelling.
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
