package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/remote"
	"github.com/spec-kit/roster-service/internal/repository"
)

// DataService owns the in-memory roster and keeps it in step with the remote
// source. Every mutation goes to the remote first; the local collection only
// changes, and subscribers are only notified, after the remote call succeeds.
type DataService struct {
	mu         sync.RWMutex
	collection *repository.EmployeeCollection
	remoteIDs  map[string]string

	source     remote.Source
	dispatcher events.Dispatcher
	hydrator   Hydrator
	logger     *zap.Logger
}

// DataDependencies bundles collaborators for DataService.
type DataDependencies struct {
	Source     remote.Source
	Dispatcher events.Dispatcher
	IDPrefix   string
	Logger     *zap.Logger
}

// NewDataService constructs the service with an empty roster.
func NewDataService(deps DataDependencies) *DataService {
	dispatcher := deps.Dispatcher
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataService{
		collection: repository.NewEmployeeCollection(),
		remoteIDs:  make(map[string]string),
		source:     deps.Source,
		dispatcher: dispatcher,
		hydrator:   NewHydrator(deps.IDPrefix),
		logger:     logger,
	}
}

// Subscribe registers handler for roster changes and returns its unsubscribe func.
func (s *DataService) Subscribe(handler events.EventHandler) func() {
	return s.dispatcher.Subscribe(handler)
}

// Subscribers reports how many handlers are registered.
func (s *DataService) Subscribers() int {
	return s.dispatcher.Len()
}

// LoadAll replaces the roster with the remote source's contents. On failure
// the roster is left untouched and the error is returned unchanged.
func (s *DataService) LoadAll(ctx context.Context) ([]domain.Employee, error) {
	raws, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.Error("failed to load employees", zap.Error(err))
		return nil, err
	}
	fields := s.hydrator.Hydrate(raws)
	remoteIDs := make(map[string]string, len(raws))
	for i, raw := range raws {
		if raw.ID == "" {
			// No remote identity: local id only, never sent back to the source.
			fields[i].ID = domain.GenerateID()
			continue
		}
		remoteIDs[fields[i].ID] = raw.ID
	}

	s.mu.Lock()
	s.collection.ReplaceAll(fields)
	s.remoteIDs = remoteIDs
	snapshot := s.collection.GetAll()
	s.mu.Unlock()

	s.logger.Info("employees loaded", zap.Int("count", len(snapshot)))
	s.publish(ctx, events.Event{Type: events.EventRosterLoaded, Employees: snapshot})
	return snapshot, nil
}

// Add creates the employee remotely, then stores it locally. When the remote
// identity is missing or already taken locally a fresh local id is used.
func (s *DataService) Add(ctx context.Context, fields domain.EmployeeFields) (domain.Employee, error) {
	raw, err := s.source.Create(ctx, fields)
	if err != nil {
		s.logger.Error("failed to add employee", zap.String("email", fields.Email), zap.Error(err))
		return domain.Employee{}, err
	}
	created := s.hydrator.FromCreated(raw, fields)

	s.mu.Lock()
	if created.ID == "" || s.collection.Has(created.ID) {
		s.logger.Warn("remote identity unusable; assigning local id",
			zap.String("remote_id", raw.ID))
		created.ID = domain.GenerateID()
		for s.collection.Has(created.ID) {
			created.ID = domain.GenerateID()
		}
	}
	emp := s.collection.Add(created)
	if raw.ID != "" {
		s.remoteIDs[emp.ID] = raw.ID
	}
	snapshot := s.collection.GetAll()
	s.mu.Unlock()

	s.publish(ctx, events.Event{Type: events.EventEmployeeAdded, EmployeeID: emp.ID, Employees: snapshot})
	return emp, nil
}

// Remove deletes the employee remotely, then locally. An id not present in
// the roster reports false without contacting the remote or notifying.
// Employees the remote never identified are removed locally only.
func (s *DataService) Remove(ctx context.Context, id string) (domain.Employee, bool, error) {
	s.mu.RLock()
	exists := s.collection.Has(id)
	remoteID, mapped := s.remoteIDs[id]
	s.mu.RUnlock()
	if !exists {
		return domain.Employee{}, false, nil
	}

	if mapped {
		if err := s.source.Delete(ctx, remoteID); err != nil {
			s.logger.Error("failed to remove employee", zap.String("employee_id", id), zap.Error(err))
			return domain.Employee{}, false, err
		}
	} else {
		s.logger.Warn("employee has no remote identity; removing locally only", zap.String("employee_id", id))
	}

	s.mu.Lock()
	removed, ok := s.collection.Remove(id)
	delete(s.remoteIDs, id)
	snapshot := s.collection.GetAll()
	s.mu.Unlock()

	// A concurrent Remove or LoadAll may have dropped it already.
	if !ok {
		return domain.Employee{}, false, nil
	}
	s.publish(ctx, events.Event{Type: events.EventEmployeeRemoved, EmployeeID: id, Employees: snapshot})
	return removed, true, nil
}

// FilteredView returns employees matching search and departments in roster order.
func (s *DataService) FilteredView(search string, departments []string) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Filter(search, departments)
}

// AllEmployees returns a copy of the full roster.
func (s *DataService) AllEmployees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.GetAll()
}

// GetEmployee looks up a single employee.
func (s *DataService) GetEmployee(id string) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.GetByID(id)
}

// Departments returns the sorted distinct departments in the roster.
func (s *DataService) Departments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Departments()
}

// Count returns the roster size.
func (s *DataService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Count()
}

func (s *DataService) publish(ctx context.Context, event events.Event) {
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("roster subscriber failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
