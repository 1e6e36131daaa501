package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/leadup-vn/leadup_backend/internal/middleware"
)

// coachHandler handles HTTP requests for the AI coach chat.
type coachHandler struct {
	coachService portssvc.CoachSvcFacade
}

// newCoachHandler creates a new coachHandler.
func newCoachHandler(cs portssvc.CoachSvcFacade) *coachHandler {
	return &coachHandler{
		coachService: cs,
	}
}

// registerCoachRoutes registers routes for the AI coach.
func registerCoachRoutes(rg *gin.RouterGroup, coachService portssvc.CoachSvcFacade) {
	h := newCoachHandler(coachService)

	coach := rg.Group("/coach")
	{
		coach.POST("/chat", h.chat)
	}
}

// chat godoc
// @Summary Chat with the coach
// @Description Sends a message (with prior turns) to the AI coach, grounded in the user's financial snapshot
// @Tags coach
// @Accept  json
// @Produce  json
// @Param   chat body dto.CoachChatRequest true "Message and conversation history"
// @Success 200 {object} dto.CoachChatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Coach unavailable"
// @Failure 500 {object} map[string]string "Failed to answer"
// @Security BearerAuth
// @Router /coach/chat [post]
func (h *coachHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CoachChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reply, err := h.coachService.Chat(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCoachUnavailable) {
			logger.Warn("Coach backend unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "The coach is temporarily unavailable. Please try again."})
		} else {
			logger.Error("Failed to answer coach chat", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CoachChatResponse{Reply: reply})
}
