package bulk

import (
	"github.com/shopspring/decimal"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/modules/roster/domain/entities/scheme"
	"github.com/iota-uz/roster/modules/roster/domain/entities/team"
)

// Plan is a matrix that passed validation with every reference resolved and
// every value parsed. Applying a Plan cannot fail.
type Plan struct {
	matrix Matrix
	env    Env

	hourNorm   decimal.Decimal
	team       team.Team
	workScheme *scheme.Assignment
}

// Compile validates the whole matrix against the target set and resolves its
// references. No record is touched here; a nil error guarantees Apply
// succeeds.
func Compile(m Matrix, targets []employee.Employee, env Env) (*Plan, error) {
	if m.IsEmpty() {
		return nil, ErrEmptyMutation
	}

	m.Skills.Values = normalizeList(m.Skills.Values)
	m.ReserveSkills.Values = normalizeList(m.ReserveSkills.Values)
	m.Tags.Values = normalizeList(m.Tags.Values)

	plan := &Plan{matrix: m, env: env}

	if m.Status.active() {
		if !m.Status.Value.Valid() {
			return nil, ErrMissingValue.WithField(FieldStatus)
		}
	}

	if m.Team.active() {
		resolved, ok := env.Teams[m.Team.ID]
		if !ok {
			return nil, ErrUnknownReference.WithField(FieldTeam)
		}
		plan.team = resolved
	}

	if m.HourNorm.active() {
		norm, err := decimal.NewFromString(m.HourNorm.Value)
		if err != nil || !norm.IsPositive() {
			return nil, ErrInvalidNumber.WithField(FieldHourNorm)
		}
		plan.hourNorm = norm
	}

	if m.WorkScheme.active() && m.WorkScheme.Action != ActionRemove {
		resolved, ok := env.Schemes[m.WorkScheme.ID]
		if !ok {
			return nil, ErrUnknownReference.WithField(FieldWorkScheme)
		}
		plan.workScheme = &resolved
	}

	if m.Skills.active() && len(m.Skills.Values) == 0 {
		return nil, ErrEmptyList.WithField(FieldSkills)
	}
	if m.ReserveSkills.active() && len(m.ReserveSkills.Values) == 0 {
		return nil, ErrEmptyList.WithField(FieldReserveSkills)
	}

	if m.Tags.active() {
		if len(m.Tags.Values) == 0 {
			return nil, ErrEmptyList.WithField(FieldTags)
		}
		switch m.Tags.Action {
		case ActionReplace:
			if len(m.Tags.Values) > employee.MaxTags {
				return nil, ErrCardinality.WithField(FieldTags)
			}
		case ActionAdd:
			// Per-record check against the actual target set: the union of
			// current tags with the candidates must fit the cap everywhere.
			for _, target := range targets {
				if unionSize(target.Tags(), m.Tags.Values) > employee.MaxTags {
					return nil, ErrCardinality.WithField(FieldTags)
				}
			}
		}
	}

	return plan, nil
}

func unionSize(current, candidates []string) int {
	size := len(current)
	for _, c := range candidates {
		if !containsFold(current, c) {
			size++
		}
	}
	return size
}
