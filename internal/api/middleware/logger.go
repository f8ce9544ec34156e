package middleware

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/evm-gateway/internal/util"
)

// RequestBodyLogSkipper defines a function to skip logging certain request bodies.
// Returning true skips logging the payload of the request.
type RequestBodyLogSkipper func(req *http.Request) bool

// DefaultRequestBodyLogSkipper returns true for all requests with Content-Type
// application/x-www-form-urlencoded or multipart/form-data as those might contain
// binary or URL-encoded file uploads unfit for logging purposes.
func DefaultRequestBodyLogSkipper(req *http.Request) bool {
	contentType := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationForm),
		strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		return true
	default:
		return false
	}
}

// LoggerConfig defines the config for the request logger.
type LoggerConfig struct {
	Skipper               middleware.Skipper
	Level                 zerolog.Level
	LogRequestBody        bool
	LogRequestHeader      bool
	LogRequestQuery       bool
	RequestBodyLogSkipper RequestBodyLogSkipper
	LogResponseBody       bool
	LogResponseHeader     bool
	LogCaller             bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper:               middleware.DefaultSkipper,
	Level:                 zerolog.DebugLevel,
	RequestBodyLogSkipper: DefaultRequestBodyLogSkipper,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig stores a request-scoped zerolog logger carrying the request id
// in the request context and logs every finished request.
//
//nolint:gocognit
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}
	if config.RequestBodyLogSkipper == nil {
		config.RequestBodyLogSkipper = DefaultRequestBodyLogSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if len(id) == 0 {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			lctx := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("bytes_in", req.Header.Get(echo.HeaderContentLength))
			if config.LogCaller {
				lctx = lctx.Caller()
			}
			l := lctx.Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			le := l.WithLevel(config.Level)
			req = c.Request()

			if config.LogRequestBody && !config.RequestBodyLogSkipper(req) {
				var reqBody []byte
				var err error
				if req.Body != nil {
					reqBody, err = io.ReadAll(req.Body)
					if err != nil {
						l.Error().Err(err).Msg("Failed to read body while logging request")
						return err
					}

					req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
				}

				le = le.Bytes("req_body", reqBody)
			}

			if config.LogRequestHeader {
				header := zerolog.Dict()
				for k, v := range req.Header {
					header.Strs(k, v)
				}

				le = le.Dict("req_header", header)
			}

			if config.LogRequestQuery {
				query := zerolog.Dict()
				for k, v := range req.URL.Query() {
					query.Strs(k, v)
				}

				le = le.Dict("req_query", query)
			}

			le.Msg("Request received")

			var resBody bytes.Buffer
			if config.LogResponseBody {
				mw := io.MultiWriter(res.Writer, &resBody)
				writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: res.Writer}
				res.Writer = writer
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			stop := time.Now()

			// Retrieve logger from context again since other middlewares might have enhanced it.
			ll := util.LogFromEchoContext(c)
			lre := ll.WithLevel(config.Level)

			if config.LogResponseBody {
				lre = lre.Bytes("res_body", resBody.Bytes())
			}

			if config.LogResponseHeader {
				header := zerolog.Dict()
				for k, v := range res.Header() {
					header.Strs(k, v)
				}

				lre = lre.Dict("res_header", header)
			}

			lre.
				Int("status", res.Status).
				Str("ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				TimeDiff("duration_ms", stop, start).
				Int64("bytes_out", res.Size).
				Msg("Response sent")

			return nil
		}
	}
}

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}

	return h.Hijack()
}
