package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/roster/modules/roster/domain/entities/scheme"
	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
	"github.com/iota-uz/roster/modules/roster/domain/entities/team"
)

func (e *employeeImpl) clone() *employeeImpl {
	c := *e
	return &c
}

// WithStatus preserves the prior status when a record is terminated so that
// the terminate action stays reversible, and restores nothing else.
func (e *employeeImpl) WithStatus(s Status) Employee {
	c := e.clone()
	if s == StatusTerminated && e.status != StatusTerminated {
		c.previousStatus = e.status
	}
	c.status = s
	return c
}

// RestoreStatus brings a terminated record back to its pre-termination
// status. Active is used when no prior status was recorded.
func (e *employeeImpl) RestoreStatus() Employee {
	if e.status != StatusTerminated {
		return e
	}
	c := e.clone()
	c.status = c.previousStatus
	if c.status == "" || c.status == StatusTerminated {
		c.status = StatusActive
	}
	c.previousStatus = ""
	return c
}

// WithTeam overwrites the work-info team snapshot and the department name
// derived from it.
func (e *employeeImpl) WithTeam(t team.Team) Employee {
	c := e.clone()
	c.team = t
	c.department = t.Name()
	return c
}

func (e *employeeImpl) WithHourNorm(norm decimal.Decimal) Employee {
	c := e.clone()
	c.hourNorm = norm
	return c
}

// WithScheme replaces the current work scheme. A displaced current scheme is
// closed and archived into the history list; the history itself is never
// rewritten.
func (e *employeeImpl) WithScheme(current *scheme.Assignment, at time.Time) Employee {
	c := e.clone()
	if e.scheme != nil {
		history := make([]scheme.Assignment, 0, len(e.schemeHistory)+1)
		history = append(history, e.schemeHistory...)
		history = append(history, e.scheme.Closed(at))
		c.schemeHistory = history
	}
	c.scheme = current
	return c
}

func (e *employeeImpl) WithSkills(skills []skill.Assignment) Employee {
	c := e.clone()
	c.skills = skills
	return c
}

func (e *employeeImpl) WithReserveSkills(skills []skill.Assignment) Employee {
	c := e.clone()
	c.reserveSkills = skills
	return c
}

// WithTags truncates to MaxTags by insertion order, which keeps the
// cardinality invariant even for callers that skipped validation.
func (e *employeeImpl) WithTags(tags []string) Employee {
	c := e.clone()
	c.tags = capTags(tags)
	return c
}

func (e *employeeImpl) AppendTask(entry TaskEntry) Employee {
	c := e.clone()
	tasks := make([]TaskEntry, 0, len(e.tasks)+1)
	tasks = append(tasks, e.tasks...)
	tasks = append(tasks, entry)
	c.tasks = tasks
	return c
}

func (e *employeeImpl) Touch(actor string, at time.Time) Employee {
	c := e.clone()
	c.updatedBy = actor
	c.updatedAt = at
	return c
}
