package controller

import (
	"net/http"

	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/renderer"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/service"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const invalidNotificationBody = "Invalid or missing data"

type Controller struct {
	initiator service.PaymentInitiator
	notifier  service.NotificationHandler
	renderer  renderer.Renderer
}

func CreatePaymentController(e *echo.Group, initiator service.PaymentInitiator, notifier service.NotificationHandler, renderer renderer.Renderer, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		initiator: initiator,
		notifier:  notifier,
		renderer:  renderer,
	}

	e.POST("/payments/cash", c.InitiateCashPayment, isLoggedIn)
	e.GET("/payments/cash/ipn", c.CashPaymentNotification)
	e.POST("/payments/cash/ipn", c.CashPaymentNotification)
}

func (c *Controller) InitiateCashPayment(e echo.Context) error {
	ctx := e.Request().Context()

	payload := dto.PaymentRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InitiateCashPayment").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.initiator.Initiate(ctx, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	page, err := c.renderer.RenderRedirect(resp.RedirectURL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InitiateCashPayment").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}

	return e.HTMLBlob(http.StatusOK, page)
}

// CashPaymentNotification answers the callback. Callers only ever see a
// generic message on failure.
func (c *Controller) CashPaymentNotification(e echo.Context) error {
	ctx := e.Request().Context()

	payload := dto.PaymentNotification{}
	err := bindNotification(e, &payload)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CashPaymentNotification").Msg("")
		return e.String(http.StatusBadRequest, invalidNotificationBody)
	}

	res, err := c.notifier.HandleNotification(ctx, payload)
	if err != nil {
		return e.String(http.StatusBadRequest, invalidNotificationBody)
	}

	if res.AlreadyCompleted {
		return e.NoContent(http.StatusOK)
	}

	page, err := c.renderer.RenderRedirect(res.RedirectURL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CashPaymentNotification").Msg("")
		return e.String(http.StatusBadRequest, invalidNotificationBody)
	}

	return e.HTMLBlob(http.StatusOK, page)
}

// bindNotification reads the query string for every method, then lets a
// form body override it.
func bindNotification(e echo.Context, payload *dto.PaymentNotification) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(e, payload); err != nil {
		return err
	}
	return binder.BindBody(e, payload)
}
