package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error(), "title": "validation error"})
			return
		}

		var oe *OverflowError
		if errors.As(err, &oe) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": oe.Error(), "title": "overflow"})
			return
		}

		var me *MalformedExpressionError
		if errors.As(err, &me) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": me.Error(), "title": "malformed expression"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
