// Package ports declares the boundaries between the core and its adapters.
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/userhub/accounts-api/internal/core/domain"
)

// The persistence operations are defined as type-parameterised capabilities
// so each entity type opts into the ones it supports and binds its own table
// shape. The mapping from entity to columns lives in the adapter and is
// statically checked; there is no reflection-driven wiring.

// Creator inserts a new entity built from its attributes payload. The
// identity is generated server-side. When the entity's natural key collides
// with an existing row the insert is a no-op and the implementation returns
// a typed conflict error instead of the stored entity.
type Creator[A, E any] interface {
	Create(ctx context.Context, attrs A) (*E, error)
}

// FinderByPK looks up exactly one entity by its primary key. The key is
// already parsed, so a malformed identity can never reach an implementation.
type FinderByPK[E any] interface {
	FindByPK(ctx context.Context, id uuid.UUID) (*E, error)
}

// Finder looks up exactly one entity matching a conjunction of field=value
// constraints. Field names are caller-controlled: implementations must check
// each against a closed allow-list before touching storage and must bind
// every value as a statement parameter.
type Finder[E any] interface {
	Find(ctx context.Context, predicate map[string]any) (*E, error)
}

// UserRepository is the user instantiation of the persistence contract.
type UserRepository interface {
	Creator[domain.UserAttributes, domain.User]
	FinderByPK[domain.User]
	Finder[domain.User]
}
