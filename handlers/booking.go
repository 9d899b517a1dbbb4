package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookwise/config"
	"bookwise/models"
	"bookwise/services/booking"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking service over HTTP. It owns the mapping
// from core error kinds to status codes: validation → 400, conflict → 409,
// not-found → 404.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetSlots handles GET /api/booking/slots?date=YYYY-MM-DD&timezone=...&slotMinutes=...
func (h *BookingHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date (YYYY-MM-DD).", "")
		return
	}

	timezone := utils.SafeTimezone(c.Query("timezone"))

	slotMinutes := config.AppConfig.DefaultSlotMinutes
	if slotMinutes == 0 {
		slotMinutes = 30
	}
	if raw := c.Query("slotMinutes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "slotMinutes must be a number between 1 and 120.", "")
			return
		}
		slotMinutes = v
	}

	slots, err := h.Svc.AvailableSlots(date, timezone, slotMinutes)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        date,
		"timezone":    timezone,
		"slotMinutes": slotMinutes,
		"slots":       slots,
	})
}

// ListReservations handles GET /api/booking/reservations?email=...
func (h *BookingHandler) ListReservations(c *gin.Context) {
	email := c.Query("email")
	reservations := h.Svc.ListReservations(email)
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// CreateReservation handles POST /api/booking/reservations.
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body.", err.Error())
		return
	}

	if req.Name == "" || req.Email == "" || req.StartUTC == "" {
		utils.JSONError(c, http.StatusBadRequest, "name, email, and startUtc are required.", "")
		return
	}

	reservation, err := h.Svc.CreateReservation(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.Logger.Info("reservation created",
		zap.String("id", reservation.ID),
		zap.Time("startUtc", reservation.StartUTC),
		zap.String("timezone", reservation.Timezone),
	)
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// CancelReservation handles DELETE /api/booking/reservations with body {"id": ...}.
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON body.", err.Error())
		return
	}
	if body.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Reservation id is required.", "")
		return
	}

	reservation, err := h.Svc.CancelReservation(body.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.Logger.Info("reservation cancelled", zap.String("id", reservation.ID))
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// writeError maps core error kinds to transport status codes.
func (h *BookingHandler) writeError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		conflictErr   *booking.ConflictError
		notFoundErr   *booking.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Message, "")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Message, "")
	default:
		h.Logger.Error("unexpected booking error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
