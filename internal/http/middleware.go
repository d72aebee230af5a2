package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"finance-tracker/internal/auth"
)

const (
	requestIDHeader = "X-Request-ID"

	ctxRequestID = "request_id"
	ctxSession   = "session"

	fieldRequestID = "request_id"
	fieldMethod    = "method"
	fieldPath      = "path"
	fieldStatus    = "status"
	fieldDuration  = "duration_ms"
	fieldUserID    = "user_id"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			fieldRequestID: c.GetString(ctxRequestID),
			fieldMethod:    c.Request.Method,
			fieldPath:      c.Request.URL.Path,
			fieldStatus:    c.Writer.Status(),
			fieldDuration:  time.Since(start).Milliseconds(),
		}
		if s, ok := sessionFrom(c); ok {
			fields[fieldUserID] = s.UserID
		}

		entry := logger.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// requireSession rejects requests without a valid bearer token and stores the
// session for the handlers.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := h.tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(ctxSession, session)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) (*auth.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*auth.Session)
	return s, ok
}

// mustSession is only used behind requireSession.
func mustSession(c *gin.Context) *auth.Session {
	s, _ := sessionFrom(c)
	return s
}
