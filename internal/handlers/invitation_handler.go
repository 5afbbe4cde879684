package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	*BaseHandler
	invitationService services.InvitationService
}

func NewInvitationHandler(base *BaseHandler, invitationService services.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		BaseHandler:       base,
		invitationService: invitationService,
	}
}

func (h *InvitationHandler) RegisterRoutes(r *gin.RouterGroup) {
	brand := r.Group("")
	brand.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.POST("/campaigns/:campaignId/invitations", h.InviteCreator)
		brand.GET("/campaigns/:campaignId/invitations", h.ListCampaignInvitations)
		brand.PUT("/invitations/:invitationId/status", h.UpdateDealStatus)
		brand.DELETE("/invitations/:invitationId", h.RemoveInvitation)
	}

	creator := r.Group("/invitations")
	creator.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator))
	{
		creator.GET("", h.ListMyInvitations)
		creator.POST("/:invitationId/respond", h.RespondToInvitation)
	}
}

func (h *InvitationHandler) InviteCreator(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.CampaignID = c.Param("campaignId")

	resp, err := h.invitationService.InviteCreator(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *InvitationHandler) ListCampaignInvitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.ListCampaignInvitations(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": resp})
}

func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.ListCreatorInvitations(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": resp})
}

func (h *InvitationHandler) RespondToInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.invitationService.RespondToInvitation(h.GetDB(c), c.Param("invitationId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvitationHandler) RemoveInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.invitationService.RemoveInvitation(h.GetDB(c), c.Param("invitationId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InvitationHandler) UpdateDealStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDealStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.invitationService.UpdateDealStatus(h.GetDB(c), c.Param("invitationId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
