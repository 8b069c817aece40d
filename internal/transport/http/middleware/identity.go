package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/platform/ctxutil"
)

const TechnicianHeader = "X-Technician-ID"

// Identity copies chi's request id and the acting technician into the
// context. A malformed technician header is ignored.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = ctxutil.WithRequestID(ctx, reqID)
		}
		if raw := r.Header.Get(TechnicianHeader); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				ctx = ctxutil.WithTechnicianID(ctx, id)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
