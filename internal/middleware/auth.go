package middleware

import (
	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// IsLoggedIn guards the routes the hosting framework calls with an HS256
// bearer token.
func IsLoggedIn(conf config.JWTConfig) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(conf.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		},
	})
}
