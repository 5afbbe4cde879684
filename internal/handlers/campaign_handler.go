package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	*BaseHandler
	campaignService   services.CampaignService
	submissionService services.SubmissionService
}

func NewCampaignHandler(base *BaseHandler, campaignService services.CampaignService, submissionService services.SubmissionService) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:       base,
		campaignService:   campaignService,
		submissionService: submissionService,
	}
}

func (h *CampaignHandler) RegisterRoutes(r *gin.RouterGroup) {
	campaigns := r.Group("/campaigns")
	campaigns.Use(middleware.AuthMiddleware())
	{
		campaigns.GET("/:campaignId", h.GetCampaign)
		campaigns.GET("/:campaignId/briefs", h.ListBriefs)
	}

	brand := r.Group("/campaigns")
	brand.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.POST("", h.CreateCampaign)
		brand.GET("", h.ListMyCampaigns)
		brand.GET("/stats", h.GetStats)
		brand.PUT("/:campaignId", h.UpdateCampaign)
		brand.DELETE("/:campaignId", h.DeleteCampaign)
		brand.POST("/:campaignId/publish", h.PublishCampaign)
		brand.POST("/:campaignId/resubmit", h.ResubmitCampaign)
		brand.POST("/:campaignId/cancel", h.CancelCampaign)
		brand.POST("/:campaignId/launch", h.LaunchCampaign)
		brand.POST("/:campaignId/briefs", h.CreateBrief)
		brand.GET("/:campaignId/submission-counts", h.GetSubmissionCounts)
	}
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.BrandID = userID

	resp, err := h.campaignService.CreateCampaign(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.GetCampaign(h.GetDB(c), c.Param("campaignId"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) ListMyCampaigns(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.ListBrandCampaigns(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": resp})
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.campaignService.UpdateCampaign(h.GetDB(c), c.Param("campaignId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.campaignService.DeleteCampaign(h.GetDB(c), c.Param("campaignId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) PublishCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.PublishCampaign(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) ResubmitCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.ResubmitCampaign(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) CancelCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.CancelCampaign(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) LaunchCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.LaunchCampaign(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.GetCampaignStats(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CampaignHandler) CreateBrief(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBriefRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.CampaignID = c.Param("campaignId")

	resp, err := h.campaignService.CreateBrief(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CampaignHandler) ListBriefs(c *gin.Context) {
	resp, err := h.campaignService.ListBriefs(h.GetDB(c), c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"briefs": resp})
}

func (h *CampaignHandler) GetSubmissionCounts(c *gin.Context) {
	resp, err := h.submissionService.GetSubmissionCounts(h.GetDB(c), c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
