package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/roster/modules/roster/bulk"
	"github.com/iota-uz/roster/modules/roster/domain/aggregates/employee"
	"github.com/iota-uz/roster/modules/roster/query"
	"github.com/iota-uz/roster/modules/roster/selection"
	"github.com/iota-uz/roster/pkg/configuration"
	"github.com/iota-uz/roster/pkg/eventbus"
)

// nowFn and actorFallbackFn are swappable in tests.
var (
	nowFn           = time.Now
	actorFallbackFn = func() string { return configuration.Use().BulkActorFallback }
)

// CommitFunc is the caller-supplied persistence callback: the service hands
// it an updater that transforms the caller's current collection, and the
// caller commits the result to its own store. Success of a batch mutation is
// decided by local validation alone, never by the callback.
type CommitFunc func(update func(records []employee.Employee) []employee.Employee)

// RosterService composes the read side (query), the selection state and the
// batch-mutation core over a caller-owned employee collection.
type RosterService struct {
	log       *logrus.Logger
	publisher eventbus.EventBus
	selection *selection.Selection
}

func NewRosterService(log *logrus.Logger, publisher eventbus.EventBus) *RosterService {
	s := &RosterService{
		log:       log,
		publisher: publisher,
		selection: selection.New(),
	}
	// Selection pruning is an explicit event, not a hidden re-render effect:
	// callers publish CollectionChangedEvent after every commit and the
	// selection reconciles synchronously.
	publisher.Subscribe(s.onCollectionChanged)
	return s
}

func (s *RosterService) Selection() *selection.Selection {
	return s.selection
}

func (s *RosterService) Query(records []employee.Employee, params *employee.FindParams) []employee.Employee {
	return query.Run(records, params)
}

func (s *RosterService) Suggest(records []employee.Employee, q string) []employee.Employee {
	return query.Suggest(records, q)
}

// NotifyCollectionChanged must be fired by the caller after every commit of
// the collection, whatever triggered it.
func (s *RosterService) NotifyCollectionChanged(records []employee.Employee) {
	s.publisher.Publish(employee.NewCollectionChangedEvent(records))
}

func (s *RosterService) onCollectionChanged(ev *employee.CollectionChangedEvent) {
	s.selection.Prune(ev.Current)
}

// BulkApply validates matrix against the currently selected subset of
// records, applies it and merges the patched records back into the full
// collection through commit. Returns the number of records patched. On a
// validation error nothing is touched; an empty selection commits and
// publishes nothing. An empty actor is stamped with the configured fallback.
func (s *RosterService) BulkApply(
	records []employee.Employee,
	matrix bulk.Matrix,
	env bulk.Env,
	actor string,
	commit CommitFunc,
) (int, error) {
	targets := make([]employee.Employee, 0, s.selection.Count())
	for _, e := range records {
		if s.selection.Contains(e.ID()) {
			targets = append(targets, e)
		}
	}

	plan, err := bulk.Compile(matrix, targets, env)
	if err != nil {
		s.log.WithError(err).Warn("bulk: matrix rejected")
		return 0, err
	}

	if len(targets) == 0 {
		s.log.Info("bulk: no records selected, nothing to apply")
		return 0, nil
	}

	if actor == "" {
		actor = actorFallbackFn()
	}

	at := nowFn()
	patched := plan.Apply(targets, actor, at)

	commit(func(current []employee.Employee) []employee.Employee {
		return mergeByID(current, patched)
	})

	s.publisher.Publish(employee.NewBulkAppliedEvent(patched, actor, at))
	s.NotifyCollectionChanged(mergeByID(records, patched))

	s.log.WithFields(logrus.Fields{
		"affected": len(patched),
		"actor":    actor,
	}).Info("bulk: matrix applied")

	return len(patched), nil
}

func mergeByID(current, patched []employee.Employee) []employee.Employee {
	byID := make(map[string]employee.Employee, len(patched))
	for _, e := range patched {
		byID[e.ID().String()] = e
	}
	merged := make([]employee.Employee, len(current))
	for i, e := range current {
		if repl, ok := byID[e.ID().String()]; ok {
			merged[i] = repl
		} else {
			merged[i] = e
		}
	}
	return merged
}
