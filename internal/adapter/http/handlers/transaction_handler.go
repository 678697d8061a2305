package handlers

import (
	"net/http"
	"strings"

	response "turismo_agenda/internal/adapter/http/dto/response"
	"turismo_agenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the ledger entries emitted by the status trigger.
type TransactionHandler struct {
	ledger usecase.ILedgerTrigger
}

func NewTransactionHandler(ledger usecase.ILedgerTrigger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// ListTransactions accepts optional from/to civil dates, both inclusive.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	entries, err := h.ledger.ListEntries(c.Request.Context(), from, to)
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerEntries(entries))
}
