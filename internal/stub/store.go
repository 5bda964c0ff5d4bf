package stub

import (
	"sync"

	"github.com/MKhiriev/go-employee-catalog/models"
)

// memoryStore keeps employees in creation order.
type memoryStore struct {
	mu        sync.RWMutex
	employees map[string]models.Employee
	order     []string
	newID     func() string
}

func newMemoryStore(newID func() string) *memoryStore {
	return &memoryStore{
		employees: make(map[string]models.Employee),
		newID:     newID,
	}
}

func (s *memoryStore) Create(e models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.EmployeeID = s.newID()
	s.employees[e.EmployeeID] = e
	s.order = append(s.order, e.EmployeeID)

	return e
}

func (s *memoryStore) List() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Employee, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.employees[id])
	}
	return list
}

func (s *memoryStore) Get(id string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

// Update replaces the whole record. The id in e is ignored.
func (s *memoryStore) Update(id string, e models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	e.EmployeeID = id
	s.employees[id] = e
	return nil
}

func (s *memoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(s.employees, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
