package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"finance-tracker/internal/alerts"
	"finance-tracker/internal/auth"
	"finance-tracker/internal/service"
)

// Services groups the domain services the API exposes.
type Services struct {
	Users         service.UserService
	Ledger        service.LedgerService
	Budgets       service.BudgetService
	Spending      service.SpendingService
	Notifications service.NotificationService
	Statements    service.StatementService
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	svc       Services
	tokens    *auth.TokenIssuer
	publisher alerts.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewHandler(svc Services, tokens *auth.TokenIssuer, publisher alerts.Publisher, logger *logrus.Logger) *Handler {
	if publisher == nil {
		publisher = alerts.Nop{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		svc:       svc,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestID(), requestLogger(h.logger), corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		authed := api.Group("", h.requireSession())
		authed.GET("/me", h.me)
		authed.GET("/categories", h.listCategories)
		authed.POST("/entries", h.createEntry)
		authed.GET("/entries", h.listEntries)
		authed.PUT("/budgets", h.setBudget)
		authed.GET("/budgets", h.listBudgets)
		authed.GET("/spending", h.spending)
		authed.GET("/analytics/expenses", h.expenseAnalytics)
		authed.GET("/notifications", h.notifications)
		authed.POST("/statements", h.exportStatement)
		authed.GET("/statements", h.listStatements)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.WithFields(logrus.Fields{
		fieldRequestID: c.GetString(ctxRequestID),
		fieldPath:      c.FullPath(),
	}).WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
