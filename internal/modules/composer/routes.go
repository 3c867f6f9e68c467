package composer

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	composer := rg.Group("/composer")
	{
		composer.POST("", h.Open)
		composer.GET("/:id", h.Get)
		composer.PATCH("/:id/fields", h.SetFields)
		composer.POST("/:id/next", h.Next)
		composer.POST("/:id/back", h.Back)
		composer.POST("/:id/images", h.UploadImages)
		composer.DELETE("/:id/images/:index", h.RemoveImage)
		composer.POST("/:id/submit", h.Submit)
		composer.DELETE("/:id", h.Abandon)
	}
}
