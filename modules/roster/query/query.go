// Package query is the read side of the roster: a purely functional
// filter-then-sort pass over the full employee collection. It never mutates
// its input and never paginates; callers page or virtualize externally.
package query

import (
	"sort"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
)

func Run(records []employee.Employee, params *employee.FindParams) []employee.Employee {
	if params == nil {
		params = &employee.FindParams{}
	}

	predicates := []Predicate{
		ExcludesTerminated(params.IncludeTerminated),
		MatchesSearch(params.Search),
		MatchesTeam(params.TeamID),
		MatchesStatus(params.Status),
		MatchesPosition(params.Position),
		MatchesOrgUnit(params.OrgUnitID),
	}

	result := make([]employee.Employee, 0, len(records))
	for _, e := range records {
		if matchesAll(e, predicates) {
			result = append(result, e)
		}
	}

	cmp := comparatorFor(params.SortBy)
	desc := params.Dir == employee.SortDesc
	sort.SliceStable(result, func(i, j int) bool {
		c := cmp(result[i], result[j])
		if desc {
			return c > 0
		}
		return c < 0
	})

	return result
}

func matchesAll(e employee.Employee, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p(e) {
			return false
		}
	}
	return true
}
