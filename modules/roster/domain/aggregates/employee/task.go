package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTaskText = errors.New("empty task text")

// TaskEntry is a timestamped note on an employee record (manual or appended
// by a bulk mutation).
type TaskEntry interface {
	ID() uuid.UUID
	Text() string
	Source() string
	CreatedAt() time.Time
}

type taskEntry struct {
	id        uuid.UUID
	text      string
	source    string
	createdAt time.Time
}

func NewTask(text, source string, createdAt time.Time) (TaskEntry, error) {
	if text == "" {
		return nil, ErrEmptyTaskText
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &taskEntry{
		id:        uuid.New(),
		text:      text,
		source:    source,
		createdAt: createdAt,
	}, nil
}

func MustNewTask(text, source string, createdAt time.Time) TaskEntry {
	entry, err := NewTask(text, source, createdAt)
	if err != nil {
		panic(err)
	}
	return entry
}

func (t *taskEntry) ID() uuid.UUID        { return t.id }
func (t *taskEntry) Text() string         { return t.text }
func (t *taskEntry) Source() string       { return t.source }
func (t *taskEntry) CreatedAt() time.Time { return t.createdAt }
