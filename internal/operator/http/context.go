// Package http provides HTTP middleware and handlers for operator
// authentication and account administration.
package http

import (
	"context"

	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
)

// operatorKey is a context key type for storing authenticated operators.
type operatorKey struct{}

// WithOperator stores an authenticated operator in the context.
// This is typically called by the authentication middleware after successful session validation.
func WithOperator(ctx context.Context, operator *operatorDomain.Operator) context.Context {
	return context.WithValue(ctx, operatorKey{}, operator)
}

// GetOperator retrieves an authenticated operator from the context.
// Returns (operator, true) if an operator is present, or (nil, false) if none was set.
// Handlers use the operator's ID as the audit actor and its RoleID for gate checks.
func GetOperator(ctx context.Context) (*operatorDomain.Operator, bool) {
	operator, ok := ctx.Value(operatorKey{}).(*operatorDomain.Operator)
	return operator, ok
}
