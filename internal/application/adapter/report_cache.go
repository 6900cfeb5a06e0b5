package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache stores serialized reports per user. A miss returns (nil, false, nil).
type ReportCache interface {
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, bool, error)

	// Generation returns the user's invalidation counter. Read it before
	// loading the data a report is built from.
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)

	// Set stores payload only while the user's generation still equals
	// generation; otherwise the write is dropped without error.
	Set(ctx context.Context, userID uuid.UUID, key string, payload []byte, generation int64) error

	// Invalidate drops every cached report of the user and bumps the generation.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
