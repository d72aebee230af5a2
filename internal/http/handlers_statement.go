package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-tracker/internal/service"
)

func (h *Handler) exportStatement(c *gin.Context) {
	period, ok := h.periodParam(c)
	if !ok {
		return
	}

	stmt, err := h.svc.Statements.Export(c.Request.Context(), mustSession(c).UserID, period)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "export statement", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key":     stmt.Key,
		"url":     stmt.URL,
		"entries": stmt.Entries,
		"year":    stmt.Period.Year,
		"month":   stmt.Period.Month,
	})
}

func (h *Handler) listStatements(c *gin.Context) {
	objects, err := h.svc.Statements.List(c.Request.Context(), mustSession(c).UserID)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "list statements", err)
		return
	}

	resp := make([]StatementObjectResponse, len(objects))
	for i, obj := range objects {
		resp[i] = objectToResponse(obj)
	}
	c.JSON(http.StatusOK, resp)
}
