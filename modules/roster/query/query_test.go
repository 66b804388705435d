package query_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/modules/roster/domain/entities/team"
	"github.com/iota-uz/roster/modules/roster/query"
)

var (
	teamSupport = team.New("Поддержка")
	teamSales   = team.New("Продажи")
)

type fixture struct {
	first, last string
	login       string
	position    string
	team        team.Team
	status      employee.Status
	hired       time.Time
	score       string
}

func makeRoster(t *testing.T, fixtures []fixture) []employee.Employee {
	t.Helper()
	records := make([]employee.Employee, 0, len(fixtures))
	for _, f := range fixtures {
		status := f.status
		if status == "" {
			status = employee.StatusActive
		}
		score := decimal.Zero
		if f.score != "" {
			score = decimal.RequireFromString(f.score)
		}
		records = append(records, employee.New(
			f.first, f.last,
			employee.WithCredentials(f.login, nil, false),
			employee.WithWorkInfo(f.position, f.team, f.hired),
			employee.WithStatusOpt(status),
			employee.WithPerformance(score),
		))
	}
	return records
}

func lastNames(records []employee.Employee) []string {
	names := make([]string, len(records))
	for i, e := range records {
		names[i] = e.LastName()
	}
	return names
}

func TestRun_SortsByNameWithCyrillicCollation(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов"},
		{first: "Егор", last: "Ёжиков"},
		{first: "Яков", last: "Яковлев"},
	})

	got := query.Run(records, &employee.FindParams{SortBy: employee.SortByName, Dir: employee.SortAsc})
	require.Equal(t, []string{"Ёжиков", "Иванов", "Яковлев"}, lastNames(got))

	desc := query.Run(records, &employee.FindParams{SortBy: employee.SortByName, Dir: employee.SortDesc})
	require.Equal(t, []string{"Яковлев", "Иванов", "Ёжиков"}, lastNames(desc))
}

func TestRun_DropsTerminatedByDefault(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов"},
		{first: "Олег", last: "Смирнов", status: employee.StatusTerminated},
	})

	got := query.Run(records, nil)
	require.Equal(t, []string{"Иванов"}, lastNames(got))

	withTerminated := query.Run(records, &employee.FindParams{IncludeTerminated: true, SortBy: employee.SortByName})
	require.Len(t, withTerminated, 2)
}

func TestRun_FreeTextSearchIsCaseInsensitiveSubstring(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов", login: "iivanov", position: "Оператор"},
		{first: "Олег", last: "Смирнов", login: "osmirnov", position: "Супервизор"},
	})

	byLogin := query.Run(records, &employee.FindParams{Search: "IIVAN"})
	require.Equal(t, []string{"Иванов"}, lastNames(byLogin))

	byPosition := query.Run(records, &employee.FindParams{Search: "супервизор"})
	require.Equal(t, []string{"Смирнов"}, lastNames(byPosition))

	none := query.Run(records, &employee.FindParams{Search: "бухгалтер"})
	require.Empty(t, none)
}

func TestRun_ExactMatchConstraints(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов", position: "Оператор", team: teamSupport},
		{first: "Олег", last: "Смирнов", position: "Оператор", team: teamSales},
		{first: "Анна", last: "Петрова", position: "Супервизор", team: teamSupport, status: employee.StatusVacation},
	})

	byTeam := query.Run(records, &employee.FindParams{TeamID: teamSupport.ID(), SortBy: employee.SortByName})
	require.Equal(t, []string{"Иванов", "Петрова"}, lastNames(byTeam))

	byStatus := query.Run(records, &employee.FindParams{Status: employee.StatusVacation})
	require.Equal(t, []string{"Петрова"}, lastNames(byStatus))

	byBoth := query.Run(records, &employee.FindParams{TeamID: teamSupport.ID(), Position: "Оператор"})
	require.Equal(t, []string{"Иванов"}, lastNames(byBoth))
}

func TestRun_SortsByHireDateAndPerformance(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов", hired: base.AddDate(0, 6, 0), score: "4.5"},
		{first: "Олег", last: "Смирнов", hired: base, score: "3.1"},
		{first: "Анна", last: "Петрова", hired: base.AddDate(1, 0, 0), score: "4.9"},
	})

	byHire := query.Run(records, &employee.FindParams{SortBy: employee.SortByHireDate, Dir: employee.SortAsc})
	require.Equal(t, []string{"Смирнов", "Иванов", "Петрова"}, lastNames(byHire))

	byScore := query.Run(records, &employee.FindParams{SortBy: employee.SortByPerformance, Dir: employee.SortDesc})
	require.Equal(t, []string{"Петрова", "Иванов", "Смирнов"}, lastNames(byScore))
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Яков", last: "Яковлев"},
		{first: "Иван", last: "Иванов"},
	})

	_ = query.Run(records, &employee.FindParams{SortBy: employee.SortByName})
	require.Equal(t, []string{"Яковлев", "Иванов"}, lastNames(records))
}

func TestSuggest_RanksFuzzyMatches(t *testing.T) {
	records := makeRoster(t, []fixture{
		{first: "Иван", last: "Иванов"},
		{first: "Олег", last: "Смирнов"},
	})

	got := query.Suggest(records, "иванов")
	require.NotEmpty(t, got)
	require.Equal(t, "Иванов", got[0].LastName())

	require.Nil(t, query.Suggest(records, ""))
}
