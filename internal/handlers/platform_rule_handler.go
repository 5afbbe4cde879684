package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createRuleRequest struct {
	Platform    string `json:"platform" validate:"required,oneof=instagram tiktok youtube twitter twitch"`
	RuleType    string `json:"rule_type" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=5000"`
	Severity    string `json:"severity" validate:"omitempty,oneof=low medium high"`
}

type updateRuleRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type PlatformRuleHandler struct {
	*BaseHandler
	ruleService services.PlatformRuleService
}

func NewPlatformRuleHandler(base *BaseHandler, ruleService services.PlatformRuleService) *PlatformRuleHandler {
	return &PlatformRuleHandler{
		BaseHandler: base,
		ruleService: ruleService,
	}
}

func (h *PlatformRuleHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/rules")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateRule)
		admin.GET("", h.ListRules)
		admin.PUT("/:ruleId", h.UpdateRule)
		admin.DELETE("/:ruleId", h.DeleteRule)
	}
}

func (h *PlatformRuleHandler) CreateRule(c *gin.Context) {
	var req createRuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	severity := req.Severity
	if severity == "" {
		severity = "medium"
	}
	rule := &models.PlatformRule{
		Platform:    req.Platform,
		RuleType:    req.RuleType,
		Description: req.Description,
		Severity:    severity,
		IsActive:    true,
	}

	if err := h.ruleService.CreateRule(h.GetDB(c), rule); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func (h *PlatformRuleHandler) ListRules(c *gin.Context) {
	rules, err := h.ruleService.ListRules(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *PlatformRuleHandler) UpdateRule(c *gin.Context) {
	var req updateRuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rule, err := h.ruleService.UpdateRule(h.GetDB(c), c.Param("ruleId"), req.Description, req.Severity, req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

func (h *PlatformRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(h.GetDB(c), c.Param("ruleId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
