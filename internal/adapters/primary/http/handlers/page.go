package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"artwork-gallery/internal/adapters/primary/http/dto"
	"artwork-gallery/internal/adapters/primary/http/views"
	"artwork-gallery/internal/core/domain"
)

// ============================================================================
// Page
// ============================================================================

func (h *Handler) ShowPage(c *gin.Context) {
	c.HTML(http.StatusOK, views.PageTemplate, views.Render(h.gallerySvc.State(), h.iiifBaseURL))
}

// SubmitFetch is the fetch button's form target. A click while a fetch is
// already running is ignored; either way the browser is sent back to the page.
func (h *Handler) SubmitFetch(c *gin.Context) {
	if _, err := h.gallerySvc.Fetch(); err != nil {
		if !errors.Is(err, domain.ErrFetchInProgress) {
			log.WithError(err).Error("start fetch failed")
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// StreamEvents pushes the current state, then every state change, as
// server-sent "state" events until the client disconnects.
func (h *Handler) StreamEvents(c *gin.Context) {
	updates, unsubscribe := h.gallerySvc.Subscribe()
	defer unsubscribe()

	c.SSEvent("state", dto.ToViewStateResponse(h.gallerySvc.State(), h.iiifBaseURL))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", dto.ToViewStateResponse(st, h.iiifBaseURL))
			return true
		}
	})
}
