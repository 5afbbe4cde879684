package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) RegisterRoutes(r *gin.RouterGroup) {
	creator := r.Group("")
	creator.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator))
	{
		creator.POST("/campaigns/:campaignId/submissions", h.CreateSubmission)
		creator.GET("/campaigns/:campaignId/submissions/mine", h.ListMySubmissions)
		creator.POST("/submissions/:submissionId/resubmit", h.Resubmit)
	}

	brand := r.Group("")
	brand.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.GET("/campaigns/:campaignId/submissions", h.ListCampaignSubmissions)
	}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.CampaignID = c.Param("campaignId")
	req.CreatorID = userID

	resp, err := h.submissionService.CreateSubmission(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SubmissionHandler) Resubmit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResubmitRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.submissionService.Resubmit(h.GetDB(c), c.Param("submissionId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SubmissionHandler) ListCampaignSubmissions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.submissionService.ListCampaignSubmissions(h.GetDB(c), c.Param("campaignId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": resp})
}

func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.submissionService.ListCreatorSubmissions(h.GetDB(c), userID, c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": resp})
}
