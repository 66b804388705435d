package employee

import "github.com/google/uuid"

type SortField string

const (
	SortByName        SortField = "name"
	SortByPosition    SortField = "position"
	SortByTeam        SortField = "team"
	SortByHireDate    SortField = "hireDate"
	SortByPerformance SortField = "performance"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// FindParams configures the filter-then-sort pass over the roster. Zero
// values mean "no constraint".
type FindParams struct {
	// Search is matched case-insensitively as a substring of last name,
	// first name, middle name, login and position combined.
	Search string

	TeamID    uuid.UUID
	Status    Status
	Position  string
	OrgUnitID uuid.UUID

	// Terminated records are dropped unless set.
	IncludeTerminated bool

	SortBy SortField
	Dir    SortDir
}
