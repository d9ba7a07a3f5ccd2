// Package middleware holds the Connect interceptors shared by every service.
package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/paycycle/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// MemberIDKey is the context key for storing the authenticated member ID.
	MemberIDKey contextKey = "member_id"
	// HouseholdIDKey is the context key for storing the authenticated member's household.
	HouseholdIDKey contextKey = "household_id"
)

// GetMemberID extracts the viewer's member ID from the context.
// Returns empty string if not found.
func GetMemberID(ctx context.Context) string {
	memberID, _ := ctx.Value(MemberIDKey).(string)
	return memberID
}

// GetHouseholdID extracts the viewer's household ID from the context.
// Returns empty string if not found.
func GetHouseholdID(ctx context.Context) string {
	householdID, _ := ctx.Value(HouseholdIDKey).(string)
	return householdID
}

// WithViewer returns a context carrying the given identity.
func WithViewer(ctx context.Context, memberID, householdID string) context.Context {
	ctx = context.WithValue(ctx, MemberIDKey, memberID)
	return context.WithValue(ctx, HouseholdIDKey, householdID)
}

// RequireAuth returns an interceptor that validates the bearer token and
// adds the viewer's member and household IDs to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithViewer(ctx, claims.MemberID, claims.HouseholdID), req)
		}
	}
}
