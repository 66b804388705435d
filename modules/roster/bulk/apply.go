package bulk

import (
	"strings"
	"time"

	"github.com/iota-uz/roster/modules/roster/catalog"
	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
)

// Apply derives a patched copy of every target record. It performs no I/O,
// raises no failures and is deterministic for a fixed (targets, plan, at)
// input; every failure condition was excluded by Compile.
func (p *Plan) Apply(targets []employee.Employee, actor string, at time.Time) []employee.Employee {
	patched := make([]employee.Employee, 0, len(targets))
	for _, target := range targets {
		patched = append(patched, p.applyOne(target, actor, at))
	}
	return patched
}

func (p *Plan) applyOne(e employee.Employee, actor string, at time.Time) employee.Employee {
	m := p.matrix

	if m.Status.active() {
		e = e.WithStatus(m.Status.Value)
	}
	if m.Team.active() {
		e = e.WithTeam(p.team)
	}
	if m.HourNorm.active() {
		e = e.WithHourNorm(p.hourNorm)
	}
	if m.WorkScheme.active() {
		// add and replace behave identically on this single-slot field;
		// remove clears the current scheme.
		if m.WorkScheme.Action == ActionRemove {
			e = e.WithScheme(nil, at)
		} else {
			e = e.WithScheme(p.workScheme, at)
		}
	}
	if m.Skills.active() {
		e = e.WithSkills(mergeSkills(m.Skills.Action, e.Skills(), m.Skills.Values, p.env.SkillCategory))
	}
	if m.ReserveSkills.active() {
		e = e.WithReserveSkills(mergeSkills(m.ReserveSkills.Action, e.ReserveSkills(), m.ReserveSkills.Values, p.env.ReserveSkillCategory))
	}
	if m.Tags.active() {
		e = e.WithTags(mergeTags(m.Tags.Action, e.Tags(), m.Tags.Values))
	}

	if comment := strings.TrimSpace(m.Comment); comment != "" {
		e = e.AppendTask(employee.MustNewTask(comment, employee.TaskSourceBulkEdit, at))
	}

	return e.Touch(actor, at)
}

// mergeSkills resolves every candidate name against the record's existing
// pool so a matching name keeps its assignment instance (same id, level,
// verification) instead of minting a duplicate.
func mergeSkills(action Action, current []skill.Assignment, names []string, fallback skill.Category) []skill.Assignment {
	switch action {
	case ActionAdd:
		merged := make([]skill.Assignment, len(current))
		copy(merged, current)
		for _, name := range names {
			if skillNamed(merged, name) {
				continue
			}
			merged = append(merged, catalog.ResolveSkill(name, current, fallback))
		}
		return merged
	case ActionReplace:
		replaced := make([]skill.Assignment, 0, len(names))
		for _, name := range names {
			replaced = append(replaced, catalog.ResolveSkill(name, current, fallback))
		}
		return replaced
	case ActionRemove:
		kept := make([]skill.Assignment, 0, len(current))
		for _, a := range current {
			if !containsFold(names, a.Name()) {
				kept = append(kept, a)
			}
		}
		return kept
	}
	return current
}

// mergeTags unions with existing tags retained first, so the deterministic
// MaxTags truncation in the aggregate always favors what the record already
// had.
func mergeTags(action Action, current, candidates []string) []string {
	switch action {
	case ActionAdd:
		merged := make([]string, len(current))
		copy(merged, current)
		for _, c := range candidates {
			if !containsFold(merged, c) {
				merged = append(merged, c)
			}
		}
		return merged
	case ActionReplace:
		return candidates
	case ActionRemove:
		kept := make([]string, 0, len(current))
		for _, tag := range current {
			if !containsFold(candidates, tag) {
				kept = append(kept, tag)
			}
		}
		return kept
	}
	return current
}

func skillNamed(pool []skill.Assignment, name string) bool {
	for _, a := range pool {
		if a.SameName(name) {
			return true
		}
	}
	return false
}
