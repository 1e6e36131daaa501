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

// goldenRuleHandler handles HTTP requests related to the golden rules.
type goldenRuleHandler struct {
	goldenRuleService portssvc.GoldenRuleSvcFacade
}

// newGoldenRuleHandler creates a new goldenRuleHandler.
func newGoldenRuleHandler(gs portssvc.GoldenRuleSvcFacade) *goldenRuleHandler {
	return &goldenRuleHandler{
		goldenRuleService: gs,
	}
}

// registerGoldenRuleRoutes registers routes related to the golden rules.
func registerGoldenRuleRoutes(rg *gin.RouterGroup, goldenRuleService portssvc.GoldenRuleSvcFacade) {
	h := newGoldenRuleHandler(goldenRuleService)

	rules := rg.Group("/golden-rules")
	{
		rules.GET("", h.listGoldenRules)
		rules.PUT("/:id", h.updateGoldenRule)
	}
}

// listGoldenRules godoc
// @Summary List golden rules
// @Description Retrieves the user's eleven discipline rules plus the unweighted compliance score
// @Tags golden-rules
// @Produce  json
// @Success 200 {object} dto.GoldenRulesSummaryResponse
// @Failure 500 {object} map[string]string "Failed to list golden rules"
// @Security BearerAuth
// @Router /golden-rules [get]
func (h *goldenRuleHandler) listGoldenRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rules, score, err := h.goldenRuleService.ListGoldenRules(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list golden rules from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list golden rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoldenRulesSummaryResponse(rules, score))
}

// updateGoldenRule godoc
// @Summary Toggle rule compliance
// @Description Sets the self-assessed compliance flag for one rule
// @Tags golden-rules
// @Accept  json
// @Produce  json
// @Param   id path string true "Rule ID"
// @Param   rule body dto.UpdateGoldenRuleRequest true "Compliance flag"
// @Success 200 {object} dto.GoldenRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to update rule"
// @Security BearerAuth
// @Router /golden-rules/{id} [put]
func (h *goldenRuleHandler) updateGoldenRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateGoldenRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rule, err := h.goldenRuleService.SetCompliance(c.Request.Context(), userID, c.Param("id"), *req.IsCompliant)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		} else {
			logger.Error("Failed to update golden rule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoldenRuleResponse(rule))
}
