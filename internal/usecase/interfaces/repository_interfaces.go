package interfaces

import (
	"context"

	"cargokz/internal/domain/entities"
)

// IShipmentRepository is the external persistence/notification collaborator
// that receives finalized orders. The engine never assumes the call
// succeeds; a failed save is logged, not surfaced to the user.

type IShipmentRepository interface {
	Save(ctx context.Context, order entities.FinalizedOrder) (entities.FinalizedOrder, error)
}

// ISessionStore keeps opaque session state between turns on behalf of the
// transport layer. Sessions expire by store policy, not by the engine.

type ISessionStore interface {
	Get(ctx context.Context, id string) (entities.Session, bool, error)
	Put(ctx context.Context, s entities.Session) error
	Delete(ctx context.Context, id string) error
}
