package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

// WriteErrorResponse only exposes the sentinel's message. Wrapped detail
// stays in the logs.
func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = publicMessage(err)
	resp.Errors = details

	return c.JSON(statusCode, resp)
}

func publicMessage(err error) string {
	for _, sentinel := range []error{
		errs.ErrInvalidComponent,
		errs.ErrConfiguration,
		errs.ErrStoreUnavailable,
		errs.ErrMissingField,
		errs.ErrObligationNotFound,
		errs.ErrInvalidMode,
		errs.ErrInvalidReturnURL,
		errs.ErrUnauthorized,
		errs.ErrClient,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return errs.ErrInternalServer.Error()
}
