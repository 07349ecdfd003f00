package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/models"
	"github.com/golang-jwt/jwt/v4"
)

// Имена JWT claims, которые выставляет login и читает middleware.
const (
	jwtClaimUserID   = "user_id"
	jwtClaimUsername = "username"
	jwtClaimRole     = "role"
)

func claimsFromContext(ctx context.Context) (jwt.MapClaims, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return nil, errors.New("user claims not found in context or invalid type")
	}
	return claims, nil
}

func GetUserIDFromContext(ctx context.Context) (int, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	userIDClaim, ok := claims[jwtClaimUserID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim in token", jwtClaimUserID)
	}

	userIDFloat, ok := userIDClaim.(float64)
	if !ok {
		return 0, fmt.Errorf("invalid type for %q claim: expected number, got %T", jwtClaimUserID, userIDClaim)
	}

	userID := int(userIDFloat)
	if userID <= 0 || userIDFloat != float64(userID) {
		return 0, fmt.Errorf("invalid user ID value in %q claim: %f", jwtClaimUserID, userIDFloat)
	}
	return userID, nil
}

func GetUsernameFromContext(ctx context.Context) (string, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	username, ok := claims[jwtClaimUsername].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("missing or invalid %q claim in token", jwtClaimUsername)
	}
	return username, nil
}

func GetUserRoleFromContext(ctx context.Context) (models.UserRole, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	roleStr, ok := claims[jwtClaimRole].(string)
	if !ok {
		return "", fmt.Errorf("missing or invalid %q claim in token", jwtClaimRole)
	}

	role := models.UserRole(roleStr)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role value in claim: %q", roleStr)
	}
	return role, nil
}

// CallerFromContext rebuilds the typed caller identity the services
// authorize against.
func CallerFromContext(ctx context.Context) (models.Caller, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return models.Caller{}, err
	}
	username, err := GetUsernameFromContext(ctx)
	if err != nil {
		return models.Caller{}, err
	}
	role, err := GetUserRoleFromContext(ctx)
	if err != nil {
		return models.Caller{}, err
	}
	return models.Caller{UserID: userID, Username: username, Role: role}, nil
}
