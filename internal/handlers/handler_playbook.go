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

// playbookHandler handles HTTP requests related to the wealth playbook.
type playbookHandler struct {
	playbookService portssvc.PlaybookSvcFacade
}

// newPlaybookHandler creates a new playbookHandler.
func newPlaybookHandler(ps portssvc.PlaybookSvcFacade) *playbookHandler {
	return &playbookHandler{
		playbookService: ps,
	}
}

// registerPlaybookRoutes registers routes related to the wealth playbook.
func registerPlaybookRoutes(rg *gin.RouterGroup, playbookService portssvc.PlaybookSvcFacade) {
	h := newPlaybookHandler(playbookService)

	playbook := rg.Group("/playbook")
	{
		playbook.POST("/plan", h.buildPlan)
		playbook.GET("/state", h.getState)
		playbook.PUT("/state", h.saveState)
		playbook.GET("/progress/:listKey", h.getPlanProgress)
		playbook.PUT("/progress/:listKey", h.savePlanProgress)
		playbook.GET("/ladder", h.getInvestmentLadder)
	}
}

// buildPlan godoc
// @Summary Build an allocation plan
// @Description Runs the jar allocation over a manually entered profile and returns the plan with diagnostics and action lists
// @Tags playbook
// @Accept  json
// @Produce  json
// @Param   profile body dto.PlaybookProfileRequest true "Financial profile"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} map[string]string "Invalid profile"
// @Failure 500 {object} map[string]string "Failed to build plan"
// @Security BearerAuth
// @Router /playbook/plan [post]
func (h *playbookHandler) buildPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PlaybookProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.playbookService.BuildPlan(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build allocation plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build plan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAllocationResponse(result))
}

// getState godoc
// @Summary Get the saved scenario
// @Description Retrieves the user's saved playbook scenario
// @Tags playbook
// @Produce  json
// @Success 200 {object} dto.PlaybookStateResponse
// @Failure 404 {object} map[string]string "No saved scenario"
// @Failure 500 {object} map[string]string "Failed to retrieve scenario"
// @Security BearerAuth
// @Router /playbook/state [get]
func (h *playbookHandler) getState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.playbookService.GetState(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No saved scenario"})
		} else {
			logger.Error("Failed to get playbook state from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scenario"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlaybookStateResponse(state))
}

// saveState godoc
// @Summary Save the scenario
// @Description Persists the entered profile and jar overrides for later sessions
// @Tags playbook
// @Accept  json
// @Produce  json
// @Param   state body dto.SavePlaybookStateRequest true "Scenario to save"
// @Success 200 {object} dto.PlaybookStateResponse
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Failure 500 {object} map[string]string "Failed to save scenario"
// @Security BearerAuth
// @Router /playbook/state [put]
func (h *playbookHandler) saveState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePlaybookStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	state, err := h.playbookService.SaveState(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save playbook state in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save scenario"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlaybookStateResponse(state))
}

// getPlanProgress godoc
// @Summary Get checklist progress
// @Description Retrieves the checklist ticks for one action list (e.g. actions7d)
// @Tags playbook
// @Produce  json
// @Param   listKey path string true "Action list key"
// @Success 200 {object} dto.PlanProgressResponse
// @Failure 404 {object} map[string]string "No progress saved"
// @Failure 500 {object} map[string]string "Failed to retrieve progress"
// @Security BearerAuth
// @Router /playbook/progress/{listKey} [get]
func (h *playbookHandler) getPlanProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.playbookService.GetPlanProgress(c.Request.Context(), userID, c.Param("listKey"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No progress saved"})
		} else {
			logger.Error("Failed to get plan progress from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve progress"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanProgressResponse(progress))
}

// savePlanProgress godoc
// @Summary Save checklist progress
// @Description Replaces the checklist ticks for one action list
// @Tags playbook
// @Accept  json
// @Produce  json
// @Param   listKey path string true "Action list key"
// @Param   progress body dto.UpdatePlanProgressRequest true "Ticked items"
// @Success 200 {object} dto.PlanProgressResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save progress"
// @Security BearerAuth
// @Router /playbook/progress/{listKey} [put]
func (h *playbookHandler) savePlanProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePlanProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := h.playbookService.SavePlanProgress(c.Request.Context(), userID, c.Param("listKey"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save plan progress in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanProgressResponse(progress))
}

// getInvestmentLadder godoc
// @Summary Get the investment ladder
// @Description Retrieves the static seven-step investment ladder with red flags per rung
// @Tags playbook
// @Produce  json
// @Success 200 {array} dto.InvestmentLadderStepResponse
// @Security BearerAuth
// @Router /playbook/ladder [get]
func (h *playbookHandler) getInvestmentLadder(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToInvestmentLadderResponse())
}
