package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

var tracer = otel.Tracer("requester")

// RequesterMiddleware lifts the requester identity asserted by the upstream
// auth gateway into the request context. Authentication itself happens
// upstream; absent headers leave an anonymous free-tier requester.
type RequesterMiddleware struct{}

func NewRequesterMiddleware() *RequesterMiddleware {
	return &RequesterMiddleware{}
}

func (m *RequesterMiddleware) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Requester.Middleware.IdentifyRequester")
		defer span.End()

		requesterID := c.Request().Header.Get(domain.RequesterIdHeader)
		if requesterID != "" {
			ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, requesterID)
			span.SetAttributes(attribute.String("RequesterId", requesterID))
		}

		tier := domain.ParseTier(c.Request().Header.Get(domain.RequesterTierHeader))
		if tier == domain.TierUnknown {
			tier = domain.TierFree
		}
		ctx = context.WithValue(ctx, domain.RequesterTierCtxKey, tier)
		span.SetAttributes(attribute.String("RequesterTier", tier.String()))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequesterID extracts the requester id; empty for anonymous requests.
func RequesterID(ctx context.Context) string {
	id, _ := ctx.Value(domain.RequesterIdCtxKey).(string)
	return id
}

// RequesterTier extracts the requester tier, defaulting to free.
func RequesterTier(ctx context.Context) domain.Tier {
	tier, ok := ctx.Value(domain.RequesterTierCtxKey).(domain.Tier)
	if !ok {
		return domain.TierFree
	}
	return tier
}
