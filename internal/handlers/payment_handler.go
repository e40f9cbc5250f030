package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/pagination"
	"posada/internal/services"
)

// PaymentHandler handles payment capture and transaction history
type PaymentHandler struct {
	paymentService services.PaymentServicer
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// TransactionResponse represents a recorded payment in the response
type TransactionResponse struct {
	ID     int64   `json:"id"`
	ItemID int64   `json:"itemId"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// CreatePayment records a payment for an item
// @Summary     Process payment
// @Description Record a payment for an item at its current price
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Success     201 {object} TransactionResponse "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /items/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.paymentService.CreateTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// ListTransactions returns the payment history
// @Summary     Transaction history
// @Description Get recorded payments, newest first, with item names resolved
// @Tags        payments
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[services.TransactionEntry] "History page"
// @Router      /transactions [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.paymentService.ListTransactions(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PaymentQR renders the QR code displayed for a payment
// @Summary     Payment QR code
// @Description Get the QR code image for a recorded payment
// @Tags        payments
// @Produce     png
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {file} binary "PNG image"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /payments/{id}/qr [get]
func (h *PaymentHandler) PaymentQR(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.paymentService.PaymentQR(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
