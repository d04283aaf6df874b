package api

import (
	"context"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin stores the verified admin claims on the request context.
func ctxWithAdmin(ctx context.Context, claims *adminClaims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// adminFromCtx retrieves the verified admin claims, if the auth middleware
// ran.
func adminFromCtx(ctx context.Context) (*adminClaims, bool) {
	claims, ok := ctx.Value(adminKey).(*adminClaims)
	return claims, ok
}
