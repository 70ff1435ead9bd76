package fold

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a tagged copy of a container's running value. It is safe to
// hand off to logging or bookkeeping code while the container keeps folding.
type Snapshot[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
}

func NewSnapshot[T any](v T) Snapshot[T] {
	return Snapshot[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

func (s Snapshot[T]) Value() T {
	return s.value
}

func (s Snapshot[T]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Snapshot[T]) Id() uuid.UUID {
	return s.id
}
