package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifedash/finances/internal/core/domain"
	portssvc "github.com/lifedash/finances/internal/core/ports/services"
	"github.com/lifedash/finances/internal/dto"
	"github.com/lifedash/finances/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactions portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactions portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactions: transactions}

	group := rg.Group("/transactions")
	{
		group.POST("", h.createTransaction)
		group.GET("", h.listTransactions)
		group.POST("/recurring/materialize", h.materializeRecurring)
		group.GET("/:id", h.getTransaction)
		group.PUT("/:id", h.updateTransaction)
		group.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactions.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create transaction", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions returns transactions newest first. The ?account= filter
// scopes to one account, ?type= to one transaction type, ?month=&year= to one
// calendar month.
func (h *transactionHandler) listTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	if typeParam := c.Query("type"); typeParam != "" {
		transactionType := domain.TransactionType(typeParam)
		if !transactionType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income, expense or transfer"})
			return
		}
		txns, err := h.transactions.ListTransactionsByType(ctx, transactionType)
		if err != nil {
			respondError(c, err, "Failed to list transactions")
			return
		}
		c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
		return
	}

	if accountID := c.Query("account"); accountID != "" {
		txns, err := h.transactions.ListTransactionsByAccount(ctx, accountID)
		if err != nil {
			respondError(c, err, "Failed to list transactions")
			return
		}
		c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
		return
	}

	if c.Query("month") != "" || c.Query("year") != "" {
		month, year, ok := monthYearFromQuery(c)
		if !ok {
			return
		}
		txns, err := h.transactions.ListTransactionsForMonth(ctx, month, year)
		if err != nil {
			respondError(c, err, "Failed to list transactions")
			return
		}
		c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
		return
	}

	txns, err := h.transactions.ListTransactions(ctx)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

func (h *transactionHandler) materializeRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	created, err := h.transactions.MaterializeRecurring(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to materialize recurring transactions", slog.String("error", err.Error()))
		respondError(c, err, "Failed to materialize recurring transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(created))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactions.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactions.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if err := h.transactions.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
