package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.GET("/account", h.GetAccount)
	}

	brand := r.Group("/payments")
	brand.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.POST("/setup", h.SetupPaymentMethod)
		brand.POST("/checkout", h.CreateCheckout)
	}

	creator := r.Group("/payments")
	creator.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator))
	{
		creator.POST("/onboard", h.OnboardCreator)
	}
}

func (h *PaymentHandler) SetupPaymentMethod(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.SetupPaymentMethod(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateCheckout(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) OnboardCreator(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.OnboardCreator(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) GetAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.GetAccount(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
