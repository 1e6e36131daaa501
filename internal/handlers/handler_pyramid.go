package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/leadup-vn/leadup_backend/internal/middleware"
)

// pyramidHandler handles HTTP requests related to the financial pyramid.
type pyramidHandler struct {
	pyramidService portssvc.PyramidSvcFacade
}

// newPyramidHandler creates a new pyramidHandler.
func newPyramidHandler(ps portssvc.PyramidSvcFacade) *pyramidHandler {
	return &pyramidHandler{
		pyramidService: ps,
	}
}

// registerPyramidRoutes registers routes related to the financial pyramid.
func registerPyramidRoutes(rg *gin.RouterGroup, pyramidService portssvc.PyramidSvcFacade) {
	h := newPyramidHandler(pyramidService)

	pyramid := rg.Group("/pyramid")
	{
		pyramid.GET("/status", h.getStatus)
		pyramid.GET("/levels", h.listLevels)
	}
}

// getStatus godoc
// @Summary Get pyramid status
// @Description Evaluates the user's recorded finances against the seven-level progression ladder
// @Tags pyramid
// @Produce  json
// @Success 200 {object} dto.PyramidStatusResponse
// @Failure 500 {object} map[string]string "Failed to evaluate pyramid"
// @Security BearerAuth
// @Router /pyramid/status [get]
func (h *pyramidHandler) getStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.pyramidService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to evaluate pyramid status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate pyramid"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPyramidStatusResponse(status))
}

// listLevels godoc
// @Summary List pyramid levels
// @Description Retrieves the static level definitions, highest first
// @Tags pyramid
// @Produce  json
// @Success 200 {array} dto.PyramidLevelResponse
// @Security BearerAuth
// @Router /pyramid/levels [get]
func (h *pyramidHandler) listLevels(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListPyramidLevelResponse())
}
