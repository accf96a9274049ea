package auth

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dhansaathi/config"
	"dhansaathi/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It is stateless: the secret and TTL are fixed at construction and safe for
// concurrent use from any number of request handlers.
type jwtService struct {
	secret []byte        // Symmetric key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
	logger *slog.Logger
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.AccessTokenTTL(),
		logger: logger,
	}, nil
}

// Issue creates a signed HS256 access token carrying the user id as subject.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the token's signature, algorithm, expiry and subject claim.
// The signing method is pinned to HS256 both via WithValidMethods and inside
// the keyfunc; a token declaring any other algorithm is rejected even if its
// bytes would validate under some scheme (algorithm-confusion protection).
// All failures collapse into ok=false; the cause is only logged at debug level.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, bool) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		s.logDebug("Token verification failed", err)

		return uuid.Nil, false
	}

	// A valid signature is not enough: the subject must be present and well-formed.
	if claims.Subject == "" {
		s.logDebug("Token missing subject claim", nil)

		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		s.logDebug("Token subject is not a valid user id", err)

		return uuid.Nil, false
	}

	return userID, true
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.ttl
}

func (s *jwtService) logDebug(msg string, err error) {
	if s.logger == nil {
		return
	}

	if err != nil {
		s.logger.Debug(msg, slog.Any("error", err))

		return
	}

	s.logger.Debug(msg)
}
