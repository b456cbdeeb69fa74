package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lifedash/finances/internal/core/ports/services"
	"github.com/lifedash/finances/internal/dto"
	"github.com/lifedash/finances/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accounts portssvc.AccountSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accounts portssvc.AccountSvcFacade) {
	h := &accountHandler{accounts: accounts}

	group := rg.Group("/accounts")
	{
		group.POST("", h.createAccount)
		group.GET("", h.listAccounts)
		group.GET("/default", h.getDefaultAccount)
		group.GET("/:id", h.getAccount)
		group.PUT("/:id", h.updateAccount)
		group.DELETE("/:id", h.deleteAccount)
	}
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

func (h *accountHandler) getDefaultAccount(c *gin.Context) {
	account, err := h.accounts.DefaultAccount(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to resolve default account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accounts.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accounts.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if err := h.accounts.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted", slog.String("account_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
