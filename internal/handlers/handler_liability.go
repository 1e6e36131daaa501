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

// liabilityHandler handles HTTP requests related to liabilities.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

// newLiabilityHandler creates a new liabilityHandler.
func newLiabilityHandler(ls portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{
		liabilityService: ls,
	}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilityService)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.POST("", h.createLiability)
		liabilities.GET("", h.listLiabilities)
		liabilities.GET("/:id", h.getLiabilityByID)
		liabilities.PUT("/:id", h.updateLiability)
		liabilities.DELETE("/:id", h.deleteLiability)
	}
}

// createLiability godoc
// @Summary Record a liability
// @Description Adds a liability to the user's balance sheet
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   liability body dto.CreateLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create liability"
// @Security BearerAuth
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.CreateLiability(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create liability in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create liability"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(liability))
}

// listLiabilities godoc
// @Summary List liabilities
// @Description Retrieves all of the user's liabilities
// @Tags liabilities
// @Produce  json
// @Success 200 {array} dto.LiabilityResponse
// @Failure 500 {object} map[string]string "Failed to list liabilities"
// @Security BearerAuth
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liabilities, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list liabilities from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list liabilities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLiabilityResponse(liabilities))
}

// getLiabilityByID godoc
// @Summary Get a liability
// @Description Retrieves a single liability owned by the caller
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 404 {object} map[string]string "Liability not found"
// @Failure 500 {object} map[string]string "Failed to retrieve liability"
// @Security BearerAuth
// @Router /liabilities/{id} [get]
func (h *liabilityHandler) getLiabilityByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.GetLiabilityByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else {
			logger.Error("Failed to get liability from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve liability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// updateLiability godoc
// @Summary Update a liability
// @Description Applies partial changes to a liability owned by the caller
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   id path string true "Liability ID"
// @Param   liability body dto.UpdateLiabilityRequest true "Fields to update"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Liability not found"
// @Failure 500 {object} map[string]string "Failed to update liability"
// @Security BearerAuth
// @Router /liabilities/{id} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.UpdateLiability(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update liability in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update liability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// deleteLiability godoc
// @Summary Delete a liability
// @Description Removes a liability owned by the caller
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Liability not found"
// @Failure 500 {object} map[string]string "Failed to delete liability"
// @Security BearerAuth
// @Router /liabilities/{id} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.liabilityService.DeleteLiability(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Liability not found"})
		} else {
			logger.Error("Failed to delete liability in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete liability"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
