package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"finance-tracker/internal/alerts"
	"finance-tracker/internal/domain"
)

const msgEntryAdded = "Entry added successfully!"

type createEntryRequest struct {
	Type     string           `json:"type" binding:"required"`
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Date     string           `json:"date"`
}

func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.Categories})
}

func (h *Handler) createEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	typ, err := domain.ParseEntryType(req.Type)
	if err != nil {
		badRequest(c, "type must be income or expense")
		return
	}
	if !domain.IsKnownCategory(req.Category) {
		badRequest(c, "unknown category")
		return
	}
	if err := domain.ValidateAmount(*req.Amount); err != nil {
		badRequest(c, err.Error())
		return
	}

	date := h.now()
	if req.Date != "" {
		if date, err = time.Parse(domain.DateLayout, req.Date); err != nil {
			badRequest(c, "date must be formatted as YYYY-MM-DD")
			return
		}
	}

	session := mustSession(c)
	ctx := c.Request.Context()

	entry, err := h.svc.Ledger.AddEntry(ctx, session.UserID, typ, req.Category, *req.Amount, date)
	if err != nil {
		h.internalError(c, "add entry", err)
		return
	}

	// alerts always cover the current month, whatever the entry date
	period := domain.PeriodOf(h.now())
	messages, err := h.svc.Notifications.Messages(ctx, session.UserID, period)
	if err != nil {
		h.internalError(c, "check budget notifications", err)
		return
	}
	if len(messages) > 0 {
		err := h.publisher.Publish(ctx, alerts.BudgetAlert{
			UserID:   session.UserID,
			Year:     period.Year,
			Month:    period.Month,
			Messages: messages,
		})
		if err != nil {
			h.logger.WithFields(logrus.Fields{
				fieldRequestID: c.GetString(ctxRequestID),
				fieldUserID:    session.UserID,
			}).WithError(err).Warn("publish budget alert")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msgEntryAdded,
		"entry":   entryToResponse(*entry),
		"alerts":  messages,
	})
}

func (h *Handler) listEntries(c *gin.Context) {
	entries, err := h.svc.Ledger.EntriesFor(c.Request.Context(), mustSession(c).UserID)
	if err != nil {
		h.internalError(c, "list entries", err)
		return
	}

	resp := make([]EntryResponse, len(entries))
	for i := range entries {
		resp[i] = entryToResponse(entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) spending(c *gin.Context) {
	period, ok := h.periodParam(c)
	if !ok {
		return
	}

	totals, err := h.svc.Spending.SpendByCategory(c.Request.Context(), mustSession(c).UserID, period)
	if err != nil {
		h.internalError(c, "spend by category", err)
		return
	}

	categories, total := totalsToResponse(totals)
	c.JSON(http.StatusOK, gin.H{
		"year":       period.Year,
		"month":      period.Month,
		"categories": categories,
		"total":      total,
	})
}

func (h *Handler) expenseAnalytics(c *gin.Context) {
	totals, err := h.svc.Spending.ExpenseTotals(c.Request.Context(), mustSession(c).UserID)
	if err != nil {
		h.internalError(c, "expense totals", err)
		return
	}

	categories, total := totalsToResponse(totals)
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      total,
	})
}

// periodParam reads ?year=&month=, defaulting each to the current period.
// It writes a 400 response and returns false when either is invalid.
func (h *Handler) periodParam(c *gin.Context) (domain.Period, bool) {
	current := domain.PeriodOf(h.now())
	year, month := current.Year, current.Month

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid year")
			return domain.Period{}, false
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "invalid month")
			return domain.Period{}, false
		}
		month = n
	}

	period, err := domain.NewPeriod(year, month)
	if err != nil {
		badRequest(c, err.Error())
		return domain.Period{}, false
	}
	return period, true
}
