package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/jwtutil"
	"github.com/pedroescher01/gestorpro-premium-sub001/pkg/logger"
	"github.com/pedroescher01/gestorpro-premium-sub001/prometheus"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token issued by the auth service
func AuthMiddleware(verifier *jwtutil.Verifier, m *prometheus.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				m.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Warn("Invalid Authorization header format")
				m.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := verifier.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				m.AuthErrorsCounter.Inc()
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("logger", log.With(zap.Uint("user_id", claims.UserID)))

			return next(c)
		}
	}
}
