package service

import (
	"context"
	"sync"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type fakeRepo[T any] struct {
	mu        sync.Mutex
	items     []T
	listErr   error
	listCalls int

	byID    map[string]T
	getErr  error
	created []interface{}
	result  *T
	err     error
	updated map[string]interface{}
	deleted []string
}

func (f *fakeRepo[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]T{}, f.items...), nil
}

func (f *fakeRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	item, ok := f.byID[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return &item, nil
}

func (f *fakeRepo[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, payload)
	return f.out(), nil
}

func (f *fakeRepo[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		f.updated = map[string]interface{}{}
	}
	f.updated[id] = payload
	return f.out(), nil
}

func (f *fakeRepo[T]) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo[T]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeRepo[T]) out() *T {
	if f.result != nil {
		v := *f.result
		return &v
	}
	return new(T)
}

type fakeReference struct {
	data models.ReferenceData
	err  error
}

func (f fakeReference) Snapshot(ctx context.Context) (models.ReferenceData, error) {
	return f.data, f.err
}

func sampleReference() models.ReferenceData {
	return models.ReferenceData{
		Departments: []models.Department{{ID: 1, Name: "Finance"}, {ID: 2, Name: "Operations"}},
		FormTypes:   []models.FormType{{ID: 7, Name: models.FlightRequestFormName}},
		StatusTypes: []models.StatusType{
			{ID: 1, Name: models.StatusDraft},
			{ID: 2, Name: models.StatusPending},
			{ID: 3, Name: models.StatusApproved},
			{ID: 4, Name: models.StatusRejected},
		},
		PurposesOfTravel: []models.PurposeOfTravel{{ID: 5, Name: "Client Visit"}},
		Approvers:        []models.Approver{{ID: 9, Name: "Dana Cruz", UserID: 42}},
		Roles:            []models.RoleType{{ID: 1, Name: "Admin"}, {ID: 2, Name: "HR"}, {ID: 3, Name: "Employee"}},
	}
}

func testStore() *WorkspaceStore {
	return NewWorkspaceStore(WorkspaceConfig{PageSize: 10, NotificationBatchSize: 5}, nil)
}

var alice = Session{UserID: "42", Role: models.RoleHR}
