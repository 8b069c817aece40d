package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	technicianIDKey ctxKey = "technician_id"
	requestIDKey    ctxKey = "request_id"
)

// WithTechnicianID stores the acting technician in the context.
func WithTechnicianID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, technicianIDKey, id)
}

// TechnicianIDFromCtx returns uuid.Nil and false when no technician is set.
func TechnicianIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(technicianIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
