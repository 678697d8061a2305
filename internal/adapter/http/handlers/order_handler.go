package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "turismo_agenda/internal/adapter/http/dto/request"
	response "turismo_agenda/internal/adapter/http/dto/response"
	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the booking calendar and the order modal.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CheckBooking returns the conflict report of one candidate line-item without
// writing anything.
func (h *OrderHandler) CheckBooking(c *gin.Context) {
	var payload request.CheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	rep, err := h.usecase.CheckLineItem(c.Request.Context(), payload.ToCandidate())
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReport(rep))
}

func (h *OrderHandler) ListBookings(c *gin.Context) {
	var q request.BookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidQuery)
		return
	}

	rows, err := h.usecase.ListBookings(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(rows))
}

func (h *OrderHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// DeleteBooking removes a single row, leaving its siblings in place.
func (h *OrderHandler) DeleteBooking(c *gin.Context) {
	if err := h.usecase.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), usecase.OrderCommand{
		Items:               payload.ToLineItems(),
		Shared:              payload.ToShared(),
		AcknowledgeWarnings: payload.AcknowledgeWarnings,
	})
	if err != nil {
		h.writeSaveError(c, res, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(res.OrderNumber, res.Bookings, res.Warnings, res.LedgerEntry))
}

// EditOrder replaces the whole order that contains the booking in the path.
func (h *OrderHandler) EditOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Edit(c.Request.Context(), c.Param("booking_id"), usecase.OrderCommand{
		Items:               payload.ToLineItems(),
		Shared:              payload.ToShared(),
		AcknowledgeWarnings: payload.AcknowledgeWarnings,
	})
	if err != nil {
		h.writeSaveError(c, res, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(res.OrderNumber, res.Bookings, res.Warnings, res.LedgerEntry))
}

// DeleteOrder removes every row of the order containing the booking in the path.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	n, err := h.usecase.Delete(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.DeleteOrderResponse{Deleted: n})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	n := entities.OrderNumber(strings.TrimSpace(c.Param("order_number")))
	rows, err := h.usecase.GetOrder(c.Request.Context(), n)
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(n, rows, nil, nil))
}

func (h *OrderHandler) GuideOccupancy(c *gin.Context) {
	guideID := c.Param("guide_id")
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		abortWithError(c, errInvalidQuery)
		return
	}

	slots, err := h.usecase.Occupancy(c.Request.Context(), guideID, date)
	if err != nil {
		abortWithError(c, mapSchedulingError(err))
		return
	}
	c.JSON(http.StatusOK, response.OccupancyResponse{GuideID: guideID, Date: date, Slots: slots})
}

// writeSaveError keeps the saved order in the body when only the ledger entry failed.
func (h *OrderHandler) writeSaveError(c *gin.Context, res usecase.OrderResult, err error) {
	appErr := mapSchedulingError(err)
	if errors.Is(err, usecase.ErrLedgerEntryFailed) {
		appErr = appErr.WithDetails(response.FromOrder(res.OrderNumber, res.Bookings, res.Warnings, nil))
	}
	abortWithError(c, appErr)
}
