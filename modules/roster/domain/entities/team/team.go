package team

import (
	"strings"

	"github.com/google/uuid"
)

// Team is value-copied into an employee's work info. A team edit therefore
// never needs to be fanned out across the roster.
type Team struct {
	id          uuid.UUID
	name        string
	description string
	color       string
	managerID   uuid.UUID
}

func New(name string) Team {
	return Team{
		id:   uuid.New(),
		name: strings.TrimSpace(name),
	}
}

func Hydrate(id uuid.UUID, name, description, color string, managerID uuid.UUID) Team {
	return Team{
		id:          id,
		name:        strings.TrimSpace(name),
		description: description,
		color:       color,
		managerID:   managerID,
	}
}

func (t Team) ID() uuid.UUID        { return t.id }
func (t Team) Name() string         { return t.name }
func (t Team) Description() string  { return t.description }
func (t Team) Color() string        { return t.color }
func (t Team) ManagerID() uuid.UUID { return t.managerID }
func (t Team) IsZero() bool         { return t.id == uuid.Nil && t.name == "" }
