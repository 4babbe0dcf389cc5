package repository

import (
	"context"

	"github.com/noah-isme/hr-portal/internal/models"
)

// BackendClient is the transport used by resource repositories.
type BackendClient interface {
	List(ctx context.Context, resource string, out interface{}) error
	Get(ctx context.Context, resource, id string, out interface{}) error
	Create(ctx context.Context, resource string, body, out interface{}) error
	Update(ctx context.Context, resource, id string, body, out interface{}) error
	Delete(ctx context.Context, resource, id string) error
}

// ResourceRepository reads and writes one backend collection.
type ResourceRepository[T any] struct {
	client   BackendClient
	resource models.ResourceType
}

// NewResourceRepository binds a repository to a collection.
func NewResourceRepository[T any](client BackendClient, resource models.ResourceType) *ResourceRepository[T] {
	return &ResourceRepository[T]{client: client, resource: resource}
}

// Resource returns the collection name.
func (r *ResourceRepository[T]) Resource() models.ResourceType {
	return r.resource
}

// List returns every record in backend order.
func (r *ResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.List(ctx, string(r.resource), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get returns a single record.
func (r *ResourceRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.client.Get(ctx, string(r.resource), id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create submits payload and returns the stored record as echoed by the backend.
func (r *ResourceRepository[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	var item T
	if err := r.client.Create(ctx, string(r.resource), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the record identified by id.
func (r *ResourceRepository[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	var item T
	if err := r.client.Update(ctx, string(r.resource), id, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the record identified by id.
func (r *ResourceRepository[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, string(r.resource), id)
}
