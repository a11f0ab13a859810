package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

const tokenIssuer = "arsenal-api"

// Context keys set by AuthMiddleware.
const (
	UserIDKey = "userID"
	UserKey   = "user"
)

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer creates a TokenIssuer for the given secret and token lifetime.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}
}

// Expiry returns the lifetime of issued tokens.
func (i *TokenIssuer) Expiry() time.Duration { return i.expiry }

// GenerateAccessToken generates a JWT access token for a user.
func (i *TokenIssuer) GenerateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ParseAccessToken validates a token string and returns its claims.
func (i *TokenIssuer) ParseAccessToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("access token has no subject")
	}
	return claims, nil
}

// UserLookup loads the user named by a token subject.
type UserLookup interface {
	GetUserByID(id string) (*models.User, error)
}

// AuthMiddleware verifies the bearer token, loads the user and stores the
// user together with its access policy in the context. The policy is built
// from the stored user, so role or base changes apply to existing tokens.
func AuthMiddleware(issuer *TokenIssuer, users UserLookup, restrictLogistics bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := issuer.ParseAccessToken(parts[1])
		if err != nil {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		user, err := users.GetUserByID(claims.Subject)
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		case err != nil:
			abortWithError(c, err)
			return
		case !user.IsActive:
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			return
		}

		policy, err := access.FromUser(user, restrictLogistics)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserKey, user)
		c.Set(access.ContextKey, policy)
		c.Next()
	}
}

// RequireRoles aborts with FORBIDDEN unless the request's policy has one of
// the given roles. It must run after AuthMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		policy, ok := PolicyFrom(c)
		if !ok {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}
		if !policy.Allows(roles...) {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// PolicyFrom returns the access policy stored by AuthMiddleware.
func PolicyFrom(c *gin.Context) (access.Policy, bool) {
	v, ok := c.Get(access.ContextKey)
	if !ok {
		return access.Policy{}, false
	}
	policy, ok := v.(access.Policy)
	return policy, ok
}
