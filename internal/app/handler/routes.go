package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires all REST API routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Search ============
	api.GET("/search", h.Search)

	// ============ Comparison ============
	cmp := api.Group("/comparison")
	{
		cmp.GET("/attributes", h.ListAttributes)
		cmp.POST("/attributes", h.CreateAttribute)
		cmp.POST("/services/:serviceId/attributes/:attributeId", h.SetAttributeValue)
		cmp.POST("/compare", h.Compare)
		cmp.POST("/export", h.Export)
	}

	// ============ Categories ============
	categories := api.Group("/categories")
	{
		categories.GET("", h.GetCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		// batch reorder is a PUT on the collection itself
		categories.PUT("", h.ReorderCategories)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	// ============ Services ============
	services := api.Group("/services")
	{
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
		services.POST("/:id/icon", h.UploadServiceIcon)
		services.GET("/:id/memos", h.GetMemos)
		services.POST("/:id/memos", h.CreateMemo)
		services.GET("/:id/relations", h.GetRelations)
	}

	// ============ Memos / Relations ============
	api.PUT("/memos/:id", h.UpdateMemo)
	api.DELETE("/memos/:id", h.DeleteMemo)
	api.POST("/relations", h.CreateRelation)
	api.DELETE("/relations/:id", h.DeleteRelation)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", h.Ping)
}

// Ping reports liveness
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
