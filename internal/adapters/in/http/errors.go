package http

import (
	"errors"
	"log/slog"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var conflictErrors = []error{
	order.ErrRejectedOrderCannotBeApproved,
	order.ErrApprovedOrderCannotBeRejected,
	order.ErrShippedOrdersCannotBeChanged,
	order.ErrOrderNotReadyForShipment,
	order.ErrOrderCannotBeShippedTwice,
	order.ErrOrderAlreadyApproved,
	order.ErrOrderAlreadyRejected,
	catalog.ErrProductAlreadyExists,
	catalog.ErrCategoryTaxRateConflict,
}

func isConflict(err error) bool {
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusCode maps an application error to the HTTP status it is reported with.
func statusCode(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case isConflict(err):
		return http.StatusConflict
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrUnknownProduct):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler writes every error as an Error body. Internal errors are logged and
// their text is not sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusCode(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		if writeErr := c.JSON(code, Error{Code: code, Message: message}); writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
