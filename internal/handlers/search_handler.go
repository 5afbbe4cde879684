package handlers

import (
	"net/http"

	"brandlink_backend/internal/middleware"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	search.Use(middleware.AuthMiddleware())
	{
		search.GET("/creators", h.SearchCreators)
	}
}

func (h *SearchHandler) SearchCreators(c *gin.Context) {
	var req dto.SearchCreatorsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.searchService.SearchCreators(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
