// README: Booking handlers for create and retrieval by id or reference.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hogicar/internal/modules/booking"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	SupplierID   int64  `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	PickupCode   string `json:"pickupCode"`
	DropoffCode  string `json:"dropoffCode"`
	PickupDate   string `json:"pickupDate"`
	DropoffDate  string `json:"dropoffDate"`

	Currency          string   `json:"currency"`
	NetPrice          *float64 `json:"netPrice"`
	CommissionPercent *float64 `json:"commissionPercent"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	// Absent price fields default to zero before the quote is computed.
	netPrice := decimal.Zero
	if req.NetPrice != nil {
		netPrice = decimal.NewFromFloat(*req.NetPrice)
	}
	var commission float64
	if req.CommissionPercent != nil {
		commission = *req.CommissionPercent
	}

	b, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		SupplierID:        req.SupplierID,
		SupplierName:      req.SupplierName,
		PickupCode:        req.PickupCode,
		DropoffCode:       req.DropoffCode,
		PickupDate:        req.PickupDate,
		DropoffDate:       req.DropoffDate,
		Currency:          req.Currency,
		NetPrice:          netPrice,
		CommissionPercent: commission,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, b)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.booking.GetByID(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

func (h *BookingHandler) GetByRef(c *gin.Context) {
	ref := c.Param("ref")
	if ref == "" {
		writeError(c, http.StatusBadRequest, "missing booking ref")
		return
	}
	b, err := h.booking.GetByRef(c.Request.Context(), ref)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}
