package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/roster/modules/roster/domain/entities/scheme"
	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
	"github.com/iota-uz/roster/modules/roster/domain/entities/team"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusProbation  Status = "probation"
	StatusVacation   Status = "vacation"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusProbation, StatusVacation, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

// MaxTags caps the free-form tag list per employee.
const MaxTags = 4

// TaskSourceBulkEdit marks task entries appended by a batch mutation.
const TaskSourceBulkEdit = "bulk-edit"

type Employee interface {
	ID() uuid.UUID

	FirstName() string
	LastName() string
	MiddleName() string
	Email() string
	Phone() string
	BirthDate() time.Time

	Login() string
	ExternalLogins() []string
	PasswordSet() bool

	OrgUnitID() uuid.UUID
	Office() string
	TimeZone() string
	HourNorm() decimal.Decimal
	Scheme() *scheme.Assignment
	SchemeHistory() []scheme.Assignment

	Position() string
	Team() team.Team
	Department() string
	HireDate() time.Time

	PreferredShifts() []string
	PreferredSchemes() []string

	Skills() []skill.Assignment
	ReserveSkills() []skill.Assignment
	Tags() []string
	Tasks() []TaskEntry

	Performance() decimal.Decimal
	Status() Status
	PreviousStatus() Status

	CreatedAt() time.Time
	UpdatedAt() time.Time
	UpdatedBy() string

	// DisplayName is "Last First Middle" with empty parts skipped.
	DisplayName() string

	// Derivation methods: an Employee is never mutated in place, every change
	// produces a new record the caller swaps into the collection.
	WithStatus(s Status) Employee
	RestoreStatus() Employee
	WithTeam(t team.Team) Employee
	WithHourNorm(norm decimal.Decimal) Employee
	WithScheme(current *scheme.Assignment, at time.Time) Employee
	WithSkills(skills []skill.Assignment) Employee
	WithReserveSkills(skills []skill.Assignment) Employee
	WithTags(tags []string) Employee
	AppendTask(entry TaskEntry) Employee
	Touch(actor string, at time.Time) Employee
}

func New(firstName, lastName string, opts ...Option) Employee {
	e := &employeeImpl{
		id:        uuid.New(),
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		status:    StatusActive,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*employeeImpl)

func WithID(id uuid.UUID) Option {
	return func(e *employeeImpl) {
		if id != uuid.Nil {
			e.id = id
		}
	}
}

func WithMiddleName(name string) Option {
	return func(e *employeeImpl) { e.middleName = strings.TrimSpace(name) }
}

func WithContacts(email, phone string) Option {
	return func(e *employeeImpl) {
		e.email = email
		e.phone = phone
	}
}

func WithBirthDate(d time.Time) Option {
	return func(e *employeeImpl) { e.birthDate = d }
}

func WithCredentials(login string, externalLogins []string, passwordSet bool) Option {
	return func(e *employeeImpl) {
		e.login = login
		e.externalLogins = externalLogins
		e.passwordSet = passwordSet
	}
}

func WithPlacement(orgUnitID uuid.UUID, office, timeZone string) Option {
	return func(e *employeeImpl) {
		e.orgUnitID = orgUnitID
		e.office = office
		e.timeZone = timeZone
	}
}

func WithHourNormOpt(norm decimal.Decimal) Option {
	return func(e *employeeImpl) { e.hourNorm = norm }
}

func WithSchemeOpt(current *scheme.Assignment, history []scheme.Assignment) Option {
	return func(e *employeeImpl) {
		e.scheme = current
		e.schemeHistory = history
	}
}

func WithWorkInfo(position string, t team.Team, hireDate time.Time) Option {
	return func(e *employeeImpl) {
		e.position = strings.TrimSpace(position)
		e.team = t
		e.department = t.Name()
		e.hireDate = hireDate
	}
}

func WithPreferences(shifts, schemes []string) Option {
	return func(e *employeeImpl) {
		e.preferredShifts = shifts
		e.preferredSchemes = schemes
	}
}

func WithSkillsOpt(skills []skill.Assignment) Option {
	return func(e *employeeImpl) { e.skills = skills }
}

func WithReserveSkillsOpt(skills []skill.Assignment) Option {
	return func(e *employeeImpl) { e.reserveSkills = skills }
}

func WithTagsOpt(tags []string) Option {
	return func(e *employeeImpl) { e.tags = capTags(tags) }
}

func WithTasksOpt(tasks []TaskEntry) Option {
	return func(e *employeeImpl) { e.tasks = tasks }
}

func WithPerformance(score decimal.Decimal) Option {
	return func(e *employeeImpl) { e.performance = score }
}

func WithStatusOpt(s Status) Option {
	return func(e *employeeImpl) {
		if s.Valid() {
			e.status = s
		}
	}
}

func WithPreviousStatus(s Status) Option {
	return func(e *employeeImpl) { e.previousStatus = s }
}

func WithTimestamps(createdAt, updatedAt time.Time) Option {
	return func(e *employeeImpl) {
		if !createdAt.IsZero() {
			e.createdAt = createdAt
		}
		if !updatedAt.IsZero() {
			e.updatedAt = updatedAt
		}
	}
}

type employeeImpl struct {
	id uuid.UUID

	firstName  string
	lastName   string
	middleName string
	email      string
	phone      string
	birthDate  time.Time

	login          string
	externalLogins []string
	passwordSet    bool

	orgUnitID     uuid.UUID
	office        string
	timeZone      string
	hourNorm      decimal.Decimal
	scheme        *scheme.Assignment
	schemeHistory []scheme.Assignment

	position   string
	team       team.Team
	department string
	hireDate   time.Time

	preferredShifts  []string
	preferredSchemes []string

	skills        []skill.Assignment
	reserveSkills []skill.Assignment
	tags          []string
	tasks         []TaskEntry

	performance    decimal.Decimal
	status         Status
	previousStatus Status

	createdAt time.Time
	updatedAt time.Time
	updatedBy string
}

func (e *employeeImpl) ID() uuid.UUID            { return e.id }
func (e *employeeImpl) FirstName() string        { return e.firstName }
func (e *employeeImpl) LastName() string         { return e.lastName }
func (e *employeeImpl) MiddleName() string       { return e.middleName }
func (e *employeeImpl) Email() string            { return e.email }
func (e *employeeImpl) Phone() string            { return e.phone }
func (e *employeeImpl) BirthDate() time.Time     { return e.birthDate }
func (e *employeeImpl) Login() string            { return e.login }
func (e *employeeImpl) ExternalLogins() []string { return e.externalLogins }
func (e *employeeImpl) PasswordSet() bool        { return e.passwordSet }
func (e *employeeImpl) OrgUnitID() uuid.UUID     { return e.orgUnitID }
func (e *employeeImpl) Office() string           { return e.office }
func (e *employeeImpl) TimeZone() string         { return e.timeZone }
func (e *employeeImpl) HourNorm() decimal.Decimal          { return e.hourNorm }
func (e *employeeImpl) Scheme() *scheme.Assignment         { return e.scheme }
func (e *employeeImpl) SchemeHistory() []scheme.Assignment { return e.schemeHistory }
func (e *employeeImpl) Position() string                   { return e.position }
func (e *employeeImpl) Team() team.Team                    { return e.team }
func (e *employeeImpl) Department() string                 { return e.department }
func (e *employeeImpl) HireDate() time.Time                { return e.hireDate }
func (e *employeeImpl) PreferredShifts() []string          { return e.preferredShifts }
func (e *employeeImpl) PreferredSchemes() []string         { return e.preferredSchemes }
func (e *employeeImpl) Skills() []skill.Assignment         { return e.skills }
func (e *employeeImpl) ReserveSkills() []skill.Assignment  { return e.reserveSkills }
func (e *employeeImpl) Tags() []string                     { return e.tags }
func (e *employeeImpl) Tasks() []TaskEntry                 { return e.tasks }
func (e *employeeImpl) Performance() decimal.Decimal       { return e.performance }
func (e *employeeImpl) Status() Status                     { return e.status }
func (e *employeeImpl) PreviousStatus() Status             { return e.previousStatus }
func (e *employeeImpl) CreatedAt() time.Time               { return e.createdAt }
func (e *employeeImpl) UpdatedAt() time.Time               { return e.updatedAt }
func (e *employeeImpl) UpdatedBy() string                  { return e.updatedBy }

func (e *employeeImpl) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.lastName, e.firstName, e.middleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func capTags(tags []string) []string {
	if len(tags) <= MaxTags {
		return tags
	}
	return tags[:MaxTags]
}
