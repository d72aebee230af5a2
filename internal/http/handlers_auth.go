package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-tracker/internal/service"
)

const msgAccountCreated = "Account created successfully."

const msgWelcome = "Welcome %s"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.svc.Users.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
	case service.IsValidation(err):
		badRequest(c, err.Error())
		return
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	default:
		h.internalError(c, "register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msgAccountCreated,
		"user":    userToResponse(*user),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.svc.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "authenticate user", err)
		return
	}

	token, expires, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		h.internalError(c, "issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf(msgWelcome, user.Username),
		"token":      token,
		"expires_at": expires.UTC().Format(time.RFC3339),
		"user":       userToResponse(*user),
	})
}

func (h *Handler) me(c *gin.Context) {
	session := mustSession(c)
	user, err := h.svc.Users.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		h.internalError(c, "load session user", err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}
