package handlers

import (
	"artwork-gallery/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gallerySvc  *services.GalleryService
	iiifBaseURL string
}

func New(gallerySvc *services.GalleryService, iiifBaseURL string) *Handler {
	return &Handler{
		gallerySvc:  gallerySvc,
		iiifBaseURL: iiifBaseURL,
	}
}

// RegisterPageRoutes registers the browser-facing page, its fetch button
// target and the state change stream.
func (h *Handler) RegisterPageRoutes(r gin.IRoutes) {
	r.GET("/", h.ShowPage)
	r.POST("/fetch", h.SubmitFetch)
	r.GET("/events", h.StreamEvents)
}

// RegisterRoutes registers the JSON API.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gallery/state", h.GetState)
	r.POST("/gallery/fetch", h.TriggerFetch)
	r.GET("/gallery/fetches", h.ListFetches)
}
