package api

import (
	"errors"
	"net/http"

	resdto "golden-travel/internal/handler/dto/response"
	"golden-travel/internal/handler/httperr"
	"golden-travel/internal/pkg/errs"
	"golden-travel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	dealQueries queries.DealQueries
}

func NewDealHandler(dealQueries queries.DealQueries) *DealHandler {
	return &DealHandler{
		dealQueries: dealQueries,
	}
}

// @Summary List date options
// @Description List a deal's date options with their effective discounts
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {array} resdto.DateOptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id}/dates [get]
func (h *DealHandler) ListDateOptions(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid deal ID format", nil)
		return
	}

	views, err := h.dealQueries.ListDateOptions(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.DateOptionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromDateOptionView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Best discount
// @Description Get the best available discount across a deal's date options
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.BestDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /deals/{id}/best-discount [get]
func (h *DealHandler) BestDiscount(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid deal ID format", nil)
		return
	}

	view, err := h.dealQueries.BestDiscount(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDealNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBestDiscountView(view))
}
