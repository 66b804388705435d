package query

import (
	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/pkg/collation"
)

// Comparator returns a strict-weak ordering over two records for one sort
// key, ascending. Direction is applied by the engine.
type Comparator func(a, b employee.Employee) int

func sortKeyName(e employee.Employee) string {
	return e.LastName() + " " + e.FirstName()
}

func CompareByName(a, b employee.Employee) int {
	return collation.Compare(sortKeyName(a), sortKeyName(b))
}

func CompareByPosition(a, b employee.Employee) int {
	return collation.Compare(a.Position(), b.Position())
}

func CompareByTeam(a, b employee.Employee) int {
	return collation.Compare(a.Team().Name(), b.Team().Name())
}

func CompareByHireDate(a, b employee.Employee) int {
	ta, tb := a.HireDate().UnixMilli(), b.HireDate().UnixMilli()
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}

func CompareByPerformance(a, b employee.Employee) int {
	return a.Performance().Cmp(b.Performance())
}

func comparatorFor(field employee.SortField) Comparator {
	switch field {
	case employee.SortByPosition:
		return CompareByPosition
	case employee.SortByTeam:
		return CompareByTeam
	case employee.SortByHireDate:
		return CompareByHireDate
	case employee.SortByPerformance:
		return CompareByPerformance
	default:
		return CompareByName
	}
}
