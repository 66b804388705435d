package query

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
)

// Predicate decides whether a record survives a filter pass.
type Predicate func(employee.Employee) bool

// searchIndex is the haystack for free-text search: the name parts, login and
// position combined.
func searchIndex(e employee.Employee) string {
	return strings.ToLower(strings.Join([]string{
		e.LastName(),
		e.FirstName(),
		e.MiddleName(),
		e.Login(),
		e.Position(),
	}, " "))
}

func MatchesSearch(term string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(e employee.Employee) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(searchIndex(e), needle)
	}
}

func MatchesTeam(teamID uuid.UUID) Predicate {
	return func(e employee.Employee) bool {
		return teamID == uuid.Nil || e.Team().ID() == teamID
	}
}

func MatchesStatus(status employee.Status) Predicate {
	return func(e employee.Employee) bool {
		return status == "" || e.Status() == status
	}
}

func MatchesPosition(position string) Predicate {
	return func(e employee.Employee) bool {
		return position == "" || strings.EqualFold(e.Position(), position)
	}
}

func MatchesOrgUnit(orgUnitID uuid.UUID) Predicate {
	return func(e employee.Employee) bool {
		return orgUnitID == uuid.Nil || e.OrgUnitID() == orgUnitID
	}
}

// ExcludesTerminated drops terminated records unless the toggle is on. It
// runs before every other filter, so a status=terminated constraint without
// the toggle yields an empty result.
func ExcludesTerminated(include bool) Predicate {
	return func(e employee.Employee) bool {
		return include || e.Status() != employee.StatusTerminated
	}
}
