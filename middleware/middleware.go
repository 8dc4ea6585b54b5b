package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"tour-booking-api/dto/res"
	"tour-booking-api/exception"
	"tour-booking-api/security"
	"tour-booking-api/usecase"
)

const (
	LocalUserID      = "user_id"
	LocalSupabaseID  = "supabase_id"
	LocalClaims      = "claims"
	LocalAccessToken = "access_token"

	jwtContextKey = "jwt"
)

type Middleware struct {
	*security.JWT
	usecase.UserUsecase
	Log *logrus.Logger

	jwtHandler fiber.Handler
}

func NewMiddleware(jwtSecurity *security.JWT, userUsecase usecase.UserUsecase, logger *logrus.Logger) *Middleware {
	middleware := &Middleware{JWT: jwtSecurity, UserUsecase: userUsecase, Log: logger}
	middleware.jwtHandler = jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: jwtSecurity.SigningKey()},
		ContextKey: jwtContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Warn("rejected bearer token")
			return unauthorized(c, "missing or invalid token")
		},
	})
	return middleware
}

// JWTProtected verifies the bearer token signature and expiry.
func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	return middleware.jwtHandler(c)
}

// ExtractUserID resolves the verified token to a local user. It must run after JWTProtected.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	token, ok := c.Locals(jwtContextKey).(*jwt.Token)
	if !ok {
		return unauthorized(c, "missing or invalid token")
	}

	claims, err := middleware.JWT.ParseClaims(token)
	if err != nil {
		middleware.Log.WithError(err).Warn("failed to read token claims")
		return unauthorized(c, "invalid token claims")
	}

	userID, err := middleware.UserUsecase.Authenticate(c.UserContext(), claims)
	if err != nil {
		message := "unauthorized"
		if appErr := exception.As(err); appErr != nil && appErr.Kind == exception.KindUnauthorized {
			message = appErr.Message
		}
		middleware.Log.WithError(err).WithField("sub", claims.Subject).Warn("failed to authenticate user")
		return unauthorized(c, message)
	}

	c.Locals(LocalUserID, userID)
	c.Locals(LocalSupabaseID, claims.Subject)
	c.Locals(LocalClaims, claims)
	c.Locals(LocalAccessToken, token.Raw)
	return c.Next()
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res.Fail(message))
}

// UserID reads the id set by ExtractUserID; zero when the route is public.
func UserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(LocalUserID).(uint)
	return userID
}

func Claims(c *fiber.Ctx) *security.Claims {
	claims, _ := c.Locals(LocalClaims).(*security.Claims)
	return claims
}

func AccessToken(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalAccessToken).(string)
	return token
}
