package api

import (
	"errors"
	"net/http"

	"golden-travel/internal/domain/booking"
	reqdto "golden-travel/internal/handler/dto/request"
	resdto "golden-travel/internal/handler/dto/response"
	"golden-travel/internal/handler/httperr"
	"golden-travel/internal/handler/middleware"
	"golden-travel/internal/pkg/errs"
	"golden-travel/internal/usecase/commands"
	"golden-travel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a trip date for the current user
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDateOptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Date option not found", nil)
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough capacity for the requested travellers", nil)
		case errors.Is(err, errs.ErrDomainValidation),
			errors.Is(err, booking.ErrInvalidTravellers),
			errors.Is(err, booking.ErrInvalidRoomOption):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get one of the current user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Confirm payment
// @Description Record a successful payment and confirm the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Payment details"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/payment [patch]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.ConfirmPayment(c.Request.Context(), userID, req.ToParams(id))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrBookingNotConfirmable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking can no longer be confirmed", nil)
		case errors.Is(err, errs.ErrDomainValidation),
			errors.Is(err, booking.ErrInvalidPaymentMethod):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking and release its seats
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 {object} nil
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrBookingNotCancelable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already completed or canceled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
