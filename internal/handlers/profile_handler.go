package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/creators/:userId", h.GetCreatorProfile)
		profiles.GET("/brands/:userId", h.GetBrandProfile)
	}

	brand := r.Group("/profiles/brand")
	brand.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.PUT("", h.UpdateBrandProfile)
	}

	creator := r.Group("/profiles/creator")
	creator.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator))
	{
		creator.PUT("", h.UpdateCreatorProfile)
	}
}

func (h *ProfileHandler) GetBrandProfile(c *gin.Context) {
	resp, err := h.profileService.GetBrandProfile(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetCreatorProfile(c *gin.Context) {
	resp, err := h.profileService.GetCreatorProfile(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateBrandProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBrandProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateBrandProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateCreatorProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCreatorProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateCreatorProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
