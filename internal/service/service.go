// Package service implements the business layer between the HTTP routes and
// storage. Services add structured logging around writes and pass storage
// results through unchanged, so callers can match on storage errors.
package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Ops bundles the storage operations for a single-key resource. Each service
// instance is configured with the store methods for its table.
type Ops[T any, K comparable] struct {
	List   func(context.Context) ([]T, error)
	Get    func(context.Context, K) (T, error)
	Create func(context.Context, T) (T, error)
	Update func(context.Context, K, map[string]any) (T, error)
	Delete func(context.Context, K) error
}

// CRUD exposes the standard operations for a resource addressed by one key.
type CRUD[T any, K comparable] struct {
	name string
	ops  Ops[T, K]
	log  zerolog.Logger
}

// NewCRUD builds a service for the named resource.
func NewCRUD[T any, K comparable](name string, ops Ops[T, K], log zerolog.Logger) *CRUD[T, K] {
	return &CRUD[T, K]{
		name: name,
		ops:  ops,
		log:  log.With().Str("service", name).Logger(),
	}
}

func (s *CRUD[T, K]) List(ctx context.Context) ([]T, error) {
	return s.ops.List(ctx)
}

func (s *CRUD[T, K]) Get(ctx context.Context, key K) (T, error) {
	return s.ops.Get(ctx, key)
}

func (s *CRUD[T, K]) Create(ctx context.Context, ent T) (T, error) {
	created, err := s.ops.Create(ctx, ent)
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		return created, err
	}
	s.log.Info().Msg("record created")
	return created, nil
}

func (s *CRUD[T, K]) Update(ctx context.Context, key K, fields map[string]any) (T, error) {
	updated, err := s.ops.Update(ctx, key, fields)
	if err != nil {
		s.log.Debug().Err(err).Str("key", fmt.Sprint(key)).Msg("update failed")
		return updated, err
	}
	s.log.Info().Str("key", fmt.Sprint(key)).Int("fields", len(fields)).Msg("record updated")
	return updated, nil
}

func (s *CRUD[T, K]) Delete(ctx context.Context, key K) error {
	if err := s.ops.Delete(ctx, key); err != nil {
		s.log.Debug().Err(err).Str("key", fmt.Sprint(key)).Msg("delete failed")
		return err
	}
	s.log.Info().Str("key", fmt.Sprint(key)).Msg("record deleted")
	return nil
}

// CompositeOps bundles the storage operations for a resource addressed by a
// two-column key, such as payments or order details.
type CompositeOps[T any, K1, K2 comparable] struct {
	List         func(context.Context) ([]T, error)
	ListByParent func(context.Context, K1) ([]T, error)
	Get          func(context.Context, K1, K2) (T, error)
	Create       func(context.Context, T) (T, error)
	Update       func(context.Context, K1, K2, map[string]any) (T, error)
	Delete       func(context.Context, K1, K2) error
}

// CompositeCRUD exposes the standard operations for a composite-key resource.
type CompositeCRUD[T any, K1, K2 comparable] struct {
	name string
	ops  CompositeOps[T, K1, K2]
	log  zerolog.Logger
}

// NewCompositeCRUD builds a service for the named composite-key resource.
func NewCompositeCRUD[T any, K1, K2 comparable](name string, ops CompositeOps[T, K1, K2], log zerolog.Logger) *CompositeCRUD[T, K1, K2] {
	return &CompositeCRUD[T, K1, K2]{
		name: name,
		ops:  ops,
		log:  log.With().Str("service", name).Logger(),
	}
}

func (s *CompositeCRUD[T, K1, K2]) List(ctx context.Context) ([]T, error) {
	return s.ops.List(ctx)
}

// ListByParent returns the rows belonging to the first key component, for
// example all payments of one customer.
func (s *CompositeCRUD[T, K1, K2]) ListByParent(ctx context.Context, parent K1) ([]T, error) {
	return s.ops.ListByParent(ctx, parent)
}

func (s *CompositeCRUD[T, K1, K2]) Get(ctx context.Context, k1 K1, k2 K2) (T, error) {
	return s.ops.Get(ctx, k1, k2)
}

func (s *CompositeCRUD[T, K1, K2]) Create(ctx context.Context, ent T) (T, error) {
	created, err := s.ops.Create(ctx, ent)
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		return created, err
	}
	s.log.Info().Msg("record created")
	return created, nil
}

func (s *CompositeCRUD[T, K1, K2]) Update(ctx context.Context, k1 K1, k2 K2, fields map[string]any) (T, error) {
	updated, err := s.ops.Update(ctx, k1, k2, fields)
	if err != nil {
		s.log.Debug().Err(err).Str("key", compositeKey(k1, k2)).Msg("update failed")
		return updated, err
	}
	s.log.Info().Str("key", compositeKey(k1, k2)).Int("fields", len(fields)).Msg("record updated")
	return updated, nil
}

func (s *CompositeCRUD[T, K1, K2]) Delete(ctx context.Context, k1 K1, k2 K2) error {
	if err := s.ops.Delete(ctx, k1, k2); err != nil {
		s.log.Debug().Err(err).Str("key", compositeKey(k1, k2)).Msg("delete failed")
		return err
	}
	s.log.Info().Str("key", compositeKey(k1, k2)).Msg("record deleted")
	return nil
}

func compositeKey(k1, k2 any) string {
	return fmt.Sprintf("%v/%v", k1, k2)
}
