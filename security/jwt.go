package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"tour-booking-api/config/common"
)

var ErrInvalidClaims = errors.New("invalid token claims")

// Claims is what the auth gate needs from an identity-provider access token.
type Claims struct {
	Subject   string
	SessionID string
	Email     string
	ExpiresAt time.Time
}

// TTL is the time left before the token expires.
func (c Claims) TTL(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

type JWT struct {
	secret []byte
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{secret: config.GetJwtConfig()}
}

func NewJWTWithSecret(secret []byte) *JWT {
	return &JWT{secret: secret}
}

// SigningKey is the HS256 secret the identity provider signs access tokens with.
func (j *JWT) SigningKey() []byte {
	return j.secret
}

// GenerateToken signs a token shaped like the provider's access tokens.
func (j *JWT) GenerateToken(subject, sessionID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        subject,
		"session_id": sessionID,
		"email":      email,
		"role":       "authenticated",
		"aud":        "authenticated",
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ParseClaims reads a verified token. The subject must be a UUID.
func (j *JWT) ParseClaims(token *jwt.Token) (*Claims, error) {
	if token == nil {
		return nil, ErrInvalidClaims
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidClaims
	}
	if _, err := uuid.Parse(subject); err != nil {
		return nil, errors.Wrap(ErrInvalidClaims, "subject is not a uuid")
	}

	claims := &Claims{Subject: subject}
	claims.SessionID, _ = mapClaims["session_id"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}
