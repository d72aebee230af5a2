package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
)

type setBudgetRequest struct {
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
}

func (h *Handler) setBudget(c *gin.Context) {
	var req setBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
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

	current := domain.PeriodOf(h.now())
	if req.Year == 0 {
		req.Year = current.Year
	}
	if req.Month == 0 {
		req.Month = current.Month
	}
	period, err := domain.NewPeriod(req.Year, req.Month)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	budget, err := h.svc.Budgets.SetBudget(c.Request.Context(), mustSession(c).UserID, req.Category, *req.Amount, period)
	if err != nil {
		h.internalError(c, "set budget", err)
		return
	}
	c.JSON(http.StatusOK, budgetToResponse(*budget))
}

func (h *Handler) listBudgets(c *gin.Context) {
	period, ok := h.periodParam(c)
	if !ok {
		return
	}

	overview, err := h.svc.Notifications.Overview(c.Request.Context(), mustSession(c).UserID, period)
	if err != nil {
		h.internalError(c, "budget overview", err)
		return
	}

	resp := make([]BudgetProgressResponse, len(overview))
	for i := range overview {
		resp[i] = progressToResponse(overview[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"year":    period.Year,
		"month":   period.Month,
		"budgets": resp,
	})
}

func (h *Handler) notifications(c *gin.Context) {
	period, ok := h.periodParam(c)
	if !ok {
		return
	}

	items, err := h.svc.Notifications.Notifications(c.Request.Context(), mustSession(c).UserID, period)
	if err != nil {
		h.internalError(c, "budget notifications", err)
		return
	}

	messages := make([]string, len(items))
	resp := make([]NotificationResponse, len(items))
	for i := range items {
		resp[i] = notificationToResponse(items[i])
		messages[i] = resp[i].Message
	}
	c.JSON(http.StatusOK, gin.H{
		"year":          period.Year,
		"month":         period.Month,
		"messages":      messages,
		"notifications": resp,
	})
}
