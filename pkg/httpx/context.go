package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims"
)

// UserIDFromCtx returns the authenticated user id attached by AuthnMiddleware.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(int64)
	return v, ok
}

// EmailFromCtx returns the authenticated email attached by AuthnMiddleware.
func EmailFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyEmail).(string)
	return v, ok
}
