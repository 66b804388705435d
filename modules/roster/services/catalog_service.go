package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/roster/modules/roster/catalog"
	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/pkg/eventbus"
)

// CatalogService owns the session lifecycle of the tag-color catalog:
// loading it from the external key-value store at session start, writing it
// back on teardown, and cascading tag deletions through the caller's
// collection.
type CatalogService struct {
	log       *logrus.Logger
	store     catalog.Store
	catalog   *catalog.Catalog
	publisher eventbus.EventBus
}

func NewCatalogService(store catalog.Store, cat *catalog.Catalog, publisher eventbus.EventBus, log *logrus.Logger) *CatalogService {
	return &CatalogService{
		log:       log,
		store:     store,
		catalog:   cat,
		publisher: publisher,
	}
}

func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *CatalogService) Load(ctx context.Context) error {
	colors, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.catalog.Load(colors)
	return nil
}

func (s *CatalogService) Save(ctx context.Context) error {
	return s.store.Save(ctx, s.catalog.Snapshot())
}

func (s *CatalogService) EnsureTag(text string) string {
	return s.catalog.EnsureTag(text)
}

func (s *CatalogService) CreateTag(text, color string) error {
	return s.catalog.CreateTag(text, color)
}

// DeleteTag removes the catalog entry and strips the exact tag text from
// every record holding it, through the caller's commit callback. Returns the
// number of records the cascade touched.
func (s *CatalogService) DeleteTag(text string, records []employee.Employee, commit CommitFunc) int {
	if !s.catalog.DeleteTag(text) {
		return 0
	}

	stripped := make([]employee.Employee, 0)
	for _, e := range records {
		if !hasExactTag(e, text) {
			continue
		}
		kept := make([]string, 0, len(e.Tags()))
		for _, tag := range e.Tags() {
			if tag != text {
				kept = append(kept, tag)
			}
		}
		stripped = append(stripped, e.WithTags(kept))
	}

	if len(stripped) > 0 {
		commit(func(current []employee.Employee) []employee.Employee {
			return mergeByID(current, stripped)
		})
	}

	s.publisher.Publish(&employee.TagDeletedEvent{Tag: text, Affected: len(stripped)})
	s.log.WithFields(logrus.Fields{
		"tag":      text,
		"affected": len(stripped),
	}).Info("catalog: tag deleted")

	return len(stripped)
}

func hasExactTag(e employee.Employee, text string) bool {
	for _, tag := range e.Tags() {
		if tag == text {
			return true
		}
	}
	return false
}
