// Package contexthelpers carries request metadata through the context for
// handlers and templates.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
const CsrfTokenContextKey = contextKey("csrfToken")

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CsrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(CsrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}
