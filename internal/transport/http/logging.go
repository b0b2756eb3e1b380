package http

import (
	"encoding/json"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

// registerLogging emits one JSON line per request through the std log
// package, so the output can be mirrored to Logstash from main.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			payload := struct {
				Time      string `json:"time"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string `json:"method"`
					URI    string `json:"uri"`
					Body   any    `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int    `json:"status"`
					Body   any    `json:"body,omitempty"`
					Error  string `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			payload.Request.Body = c.Get(requestBodyLogKey)
			payload.Response.Status = v.Status
			payload.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := summarizeBody(reqBody); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := summarizeBody(resBody); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

// summarizeBody keeps log lines bounded: JSON bodies pass through (clamped),
// binary payloads collapse to a marker, everything else is clamped text.
func summarizeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	if json.Valid(body) {
		if len(body) <= maxLoggedBody {
			var data any
			if err := json.Unmarshal(body, &data); err == nil {
				return data
			}
		}
		return map[string]any{"_truncated": true, "_bytes": len(body)}
	}

	if !utf8.Valid(body) {
		return "binary"
	}
	return clampString(string(body))
}

func clampString(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}
