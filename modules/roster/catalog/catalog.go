// Package catalog holds the session-wide registries behind bulk editing: tag
// text to display color, and skill identity resolution. The catalog owns no
// employee data; cascades are reported to the caller, never applied silently.
package catalog

import (
	"context"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/roster/modules/roster/domain/entities/skill"
	"github.com/iota-uz/roster/pkg/serrors"
)

var ErrDuplicateTag = serrors.NewError("CATALOG_DUPLICATE_TAG", "tag already exists", "tags")

// Store is the external key-value home for the tag-color mapping, loaded at
// session start and written back on teardown.
type Store interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, colors map[string]string) error
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Catalog struct {
	log    *logrus.Logger
	colors map[string]string
}

func New(log *logrus.Logger) *Catalog {
	return &Catalog{
		log:    log,
		colors: map[string]string{},
	}
}

// EnsureTag returns the registered color for text, registering a
// deterministically derived one on first reference. A given tag always keeps
// the color it first rendered with.
func (c *Catalog) EnsureTag(text string) string {
	if color, ok := c.colors[text]; ok {
		return color
	}
	color := ColorFor(text)
	c.colors[text] = color
	return color
}

// CreateTag registers text with a caller-chosen color and rejects exact
// duplicates.
func (c *Catalog) CreateTag(text, color string) error {
	if _, ok := c.colors[text]; ok {
		return ErrDuplicateTag
	}
	c.colors[text] = color
	return nil
}

// DeleteTag removes the catalog entry and reports whether it existed. The
// caller is responsible for stripping the tag from every employee holding it;
// see CatalogService.DeleteTag for the cascade.
func (c *Catalog) DeleteTag(text string) bool {
	if _, ok := c.colors[text]; !ok {
		return false
	}
	delete(c.colors, text)
	return true
}

func (c *Catalog) Has(text string) bool {
	_, ok := c.colors[text]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.colors)
}

// Load replaces the registry with a persisted mapping. Malformed colors fall
// back to the hash-derived one instead of failing the whole load.
func (c *Catalog) Load(colors map[string]string) {
	loaded := make(map[string]string, len(colors))
	for text, color := range colors {
		if text == "" {
			continue
		}
		if !colorPattern.MatchString(color) {
			if c.log != nil {
				c.log.Warnf("catalog: malformed color %q for tag %q, using derived color", color, text)
			}
			color = ColorFor(text)
		}
		loaded[text] = color
	}
	c.colors = loaded
}

// Snapshot returns a copy of the registry for persistence.
func (c *Catalog) Snapshot() map[string]string {
	out := make(map[string]string, len(c.colors))
	for text, color := range c.colors {
		out[text] = color
	}
	return out
}

// ResolveSkill looks label up in pool by name, case-insensitively. A hit
// returns the existing assignment unchanged (same id, level, verification); a
// miss synthesizes an unverified level-3 assignment in fallbackCategory.
func ResolveSkill(label string, pool []skill.Assignment, fallbackCategory skill.Category) skill.Assignment {
	for _, a := range pool {
		if a.SameName(label) {
			return a
		}
	}
	return skill.New(label, fallbackCategory, skill.DefaultLevel)
}
