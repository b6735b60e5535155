package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"travel/internal/config"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by this package.
type CtxKey string

const (
	// UserIDKey holds the domain.UserID of the authenticated caller.
	UserIDKey CtxKey = "UserID"
)

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key used to verify bearer tokens. Bearer
	// tokens are rejected when it is empty.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates RS256 bearer tokens whose subject is a user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	s := &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
	if opts == nil || opts.PublicKey == "" {
		return s, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}
	s.publicKey = key

	return s, nil
}

// HandleBearerAuth verifies the token and stores the user ID of its subject in
// the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "bearer authentication is not configured")
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.Int64("userID", userID))

	return ctx, nil
}

// Middleware authenticates requests carrying an Authorization header. Requests
// without one continue anonymously.
func (s SecHandler) Middleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)

				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				h.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "authorization header must be a bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
			if err != nil {
				h.WriteError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated caller, or 0 for anonymous
// requests.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if id, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return id
	}

	return 0
}
