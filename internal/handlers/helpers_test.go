package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	jwtpkg "github.com/golang-jwt/jwt/v5"
	appjwt "github.com/skosovan/data-analyzer/internal/jwt"
	"github.com/skosovan/data-analyzer/internal/middlewares"
)

// withTestClaims attaches authenticated claims to a request, standing in for
// the auth middleware.
func withTestClaims(req *http.Request, username, role, sessionID string) *http.Request {
	claims := &appjwt.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwtpkg.RegisteredClaims{
			ID: sessionID,
		},
	}
	return req.WithContext(middlewares.ContextWithClaims(req.Context(), claims))
}

// requestWithClaims builds an authenticated request with no body.
func requestWithClaims(method, target, username, role, sessionID string) *http.Request {
	return withTestClaims(httptest.NewRequest(method, target, nil), username, role, sessionID)
}

// withChiParam attaches a chi URL parameter, standing in for the router.
func withChiParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
