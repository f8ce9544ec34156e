package httperrors

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int64
		var body interface{}

		var (
			httpErr           *HTTPError
			httpValidationErr *HTTPValidationError
			echoErr           *echo.HTTPError
		)

		switch {
		case errors.As(err, &httpErr):
			code = *httpErr.Code
			body = httpErr
		case errors.As(err, &httpValidationErr):
			code = *httpValidationErr.Code
			body = httpValidationErr
		default:
			if gwErr := FromGateway(err); gwErr != nil {
				httpErr = gwErr
			} else if errors.As(err, &echoErr) {
				httpErr = NewFromEcho(echoErr)
				httpErr.Internal = err
			} else {
				httpErr = NewFromEcho(echo.NewHTTPError(http.StatusInternalServerError))
				httpErr.Internal = err
			}
			code = *httpErr.Code
			body = httpErr
		}

		if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails && httpErr != nil {
			hidden := *httpErr
			hidden.Title = swag.String(http.StatusText(http.StatusInternalServerError))
			hidden.Detail = ""
			body = &hidden
		}

		logger := log.Ctx(c.Request().Context())
		if logger.GetLevel() == zerolog.Disabled {
			logger = &log.Logger
		}

		event := logger.Debug()
		if code >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).Int64("status", code).Msg("Request failed")

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(int(code))
		} else {
			err = c.JSON(int(code), body)
		}

		if err != nil {
			logger.Warn().Err(err).AnErr("http_err", err).Msg("Failed to handle HTTP error")
		}
	}
}
