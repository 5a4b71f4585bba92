package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 挂载编解码API路由
func RegisterRoutes(r *gin.Engine, h *Handler, mw ...gin.HandlerFunc) {
	v1 := r.Group("/api/v1", mw...)

	messages := v1.Group("/messages")
	{
		messages.POST("/identify", h.Identify)
		messages.POST("/split", h.Split)
		messages.POST("/extract", h.Extract)
	}

	codec := v1.Group("/codec")
	{
		codec.POST("/pack", h.Pack)
		codec.POST("/unpack", h.Unpack)
		codec.POST("/nybblify", h.Nybblify)
		codec.POST("/denybblify", h.Denybblify)
	}

	manufacturers := v1.Group("/manufacturers")
	{
		manufacturers.GET("", h.ListManufacturers)
		manufacturers.GET("/search", h.SearchManufacturers)
		manufacturers.GET("/:id", h.GetManufacturer)
	}
}
