package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/leadup-vn/leadup_backend/internal/middleware"
)

// journeyHandler handles HTTP requests related to the 30-day journey.
type journeyHandler struct {
	journeyService portssvc.JourneySvcFacade
}

// newJourneyHandler creates a new journeyHandler.
func newJourneyHandler(js portssvc.JourneySvcFacade) *journeyHandler {
	return &journeyHandler{
		journeyService: js,
	}
}

// registerJourneyRoutes registers routes related to the 30-day journey.
func registerJourneyRoutes(rg *gin.RouterGroup, journeyService portssvc.JourneySvcFacade) {
	h := newJourneyHandler(journeyService)

	journey := rg.Group("/journey")
	{
		journey.GET("", h.getJourney)
		journey.PUT("/days/:day", h.updateJourneyDay)
	}
}

// getJourney godoc
// @Summary Get the 30-day journey
// @Description Retrieves the full curriculum merged with the user's completion state
// @Tags journey
// @Produce  json
// @Success 200 {object} dto.JourneyResponse
// @Failure 500 {object} map[string]string "Failed to retrieve journey"
// @Security BearerAuth
// @Router /journey [get]
func (h *journeyHandler) getJourney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.journeyService.GetJourneyProgress(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get journey progress from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journey"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJourneyResponse(progress))
}

// updateJourneyDay godoc
// @Summary Update a journey day
// @Description Marks a day of the journey complete (or not) with an optional note
// @Tags journey
// @Accept  json
// @Produce  json
// @Param   day path int true "Journey day (1-30)"
// @Param   progress body dto.UpdateJourneyDayRequest true "Completion state"
// @Success 200 {object} domain.JourneyProgress
// @Failure 400 {object} map[string]string "Invalid day or input"
// @Failure 500 {object} map[string]string "Failed to update journey day"
// @Security BearerAuth
// @Router /journey/days/{day} [put]
func (h *journeyHandler) updateJourneyDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day must be a number"})
		return
	}

	var req dto.UpdateJourneyDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.journeyService.UpdateJourneyDay(c.Request.Context(), userID, day, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update journey day in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journey day"})
		}
		return
	}

	c.JSON(http.StatusOK, progress)
}
