package query

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
)

// Suggest ranks records against a partial query by display name, for the
// quick-search box. Unlike Run it tolerates typos and skipped letters; it is
// not a substitute for the strict roster filter.
func Suggest(records []employee.Employee, q string) []employee.Employee {
	if q == "" {
		return nil
	}
	names := make([]string, len(records))
	for i, e := range records {
		names[i] = e.DisplayName()
	}
	ranks := fuzzy.RankFindNormalizedFold(q, names)
	sort.Sort(ranks)

	result := make([]employee.Employee, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, records[rank.OriginalIndex])
	}
	return result
}
