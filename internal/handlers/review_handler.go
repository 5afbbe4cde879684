package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService     services.ReviewService
	complianceService services.ComplianceService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService, complianceService services.ComplianceService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:       base,
		reviewService:     reviewService,
		complianceService: complianceService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviewers := r.Group("")
	reviewers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand, models.UserRoleAdmin))
	{
		reviewers.POST("/submissions/:submissionId/review", h.ReviewSubmission)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/review-queue", h.ListReviewQueue)
		admin.POST("/campaigns/:campaignId/claim", h.StartCampaignReview)
		admin.POST("/campaigns/:campaignId/decide", h.DecideCampaign)
		admin.POST("/campaigns/:campaignId/triage", h.TriageCampaign)
	}

	reviews := r.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.GET("/:subjectType/:subjectId", h.ListSubjectReviews)
	}
}

func (h *ReviewHandler) ReviewSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewSubmissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.ReviewSubmission(h.GetDB(c), c.Param("submissionId"), userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) ListReviewQueue(c *gin.Context) {
	_, limit := ParsePagination(c)

	resp, err := h.reviewService.ListReviewQueue(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": resp})
}

func (h *ReviewHandler) StartCampaignReview(c *gin.Context) {
	if err := h.reviewService.StartCampaignReview(h.GetDB(c), c.Param("campaignId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) DecideCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DecideCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.DecideCampaign(h.GetDB(c), c.Param("campaignId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TriageCampaign запускает AI-проход вручную, вне воркера.
func (h *ReviewHandler) TriageCampaign(c *gin.Context) {
	resp, err := h.complianceService.TriageCampaign(c.Request.Context(), h.GetDB(c), c.Param("campaignId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) ListSubjectReviews(c *gin.Context) {
	subjectType := c.Param("subjectType")
	if subjectType != models.ReviewSubjectCampaign && subjectType != models.ReviewSubjectSubmission {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown review subject type"})
		return
	}

	resp, err := h.reviewService.ListSubjectReviews(h.GetDB(c), subjectType, c.Param("subjectId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": resp})
}
