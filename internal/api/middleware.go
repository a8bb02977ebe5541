package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resource-crud-api/internal/httperr"
	"github.com/rs/zerolog"
)

// Context keys
const (
	requestIDKey = "request_id"
	bodyKey      = "body"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// abortWithError hands err to the error middleware and stops the chain
func abortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

// requestIDMiddleware reuses the caller's request id or assigns a new one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("Request completed")
	}
}

// errorMiddleware is the terminal error handler. It turns the last error
// recorded by any later stage into a JSON response, and never forwards.
func errorMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := httperr.StatusOf(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("Request failed")
		}

		c.JSON(status, gin.H{"error": httperr.MessageOf(err)})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("request_id", c.GetString(requestIDKey)).Msg("Panic recovered")
				abortWithError(c, httperr.New(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}

// bodyParserMiddleware reads JSON and URL-encoded bodies up to limit bytes,
// keeps the decoded body for logging and restores the raw body for binding
func bodyParserMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.ContentType()
		if c.Request.Body == nil || (contentType != gin.MIMEJSON && contentType != gin.MIMEPOSTForm) {
			c.Next()
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				abortWithError(c, httperr.New(http.StatusRequestEntityTooLarge, "request entity too large"))
				return
			}
			abortWithError(c, httperr.New(http.StatusBadRequest, "failed to read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		body, err := parseBody(contentType, raw)
		if err != nil {
			abortWithError(c, httperr.New(http.StatusBadRequest, "invalid request body"))
			return
		}
		if len(body) > 0 {
			c.Set(bodyKey, body)
		}

		c.Next()
	}
}

// parseBody decodes a JSON object or a URL-encoded form into a map
func parseBody(contentType string, raw []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if contentType == gin.MIMEJSON {
		var body interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		switch v := body.(type) {
		case map[string]interface{}:
			return v, nil
		case []interface{}:
			return map[string]interface{}{"items": v}, nil
		default:
			return nil, fmt.Errorf("unexpected JSON body of type %T", body)
		}
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, err
	}
	body := make(map[string]interface{}, len(values))
	for key, v := range values {
		if len(v) == 1 {
			body[key] = v[0]
		} else {
			body[key] = v
		}
	}
	return body, nil
}

// requestTraceMiddleware logs every received request and its parsed body
func requestTraceMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		event := log.Info().
			Str("method", c.Request.Method).
			Str("url", c.Request.URL.RequestURI()).
			Str("request_id", c.GetString(requestIDKey))

		if body, ok := c.Get(bodyKey); ok {
			if data, err := json.Marshal(body); err == nil {
				event = event.RawJSON("body", data)
			}
		}

		event.Msgf("Received a %s request to %s", c.Request.Method, c.Request.URL.RequestURI())
		c.Next()
	}
}
