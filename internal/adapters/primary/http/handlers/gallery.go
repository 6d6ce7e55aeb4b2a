package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"artwork-gallery/internal/adapters/primary/http/dto"
	"artwork-gallery/internal/core/domain"
)

// ============================================================================
// Gallery State API
// ============================================================================

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.gallerySvc.State(), h.iiifBaseURL))
}

// TriggerFetch starts a fetch and answers 202 with the loading state. With
// ?wait=true it answers once the fetch has settled instead.
func (h *Handler) TriggerFetch(c *gin.Context) {
	done, err := h.gallerySvc.Fetch()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if wait, _ := strconv.ParseBool(c.DefaultQuery("wait", "false")); !wait {
		c.JSON(http.StatusAccepted, dto.ToViewStateResponse(h.gallerySvc.State(), h.iiifBaseURL))
		return
	}

	select {
	case st := <-done:
		resp := dto.ToViewStateResponse(st, h.iiifBaseURL)
		if st.Error != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": st.Error, "state": resp})
			return
		}
		c.JSON(http.StatusOK, resp)
	case <-c.Request.Context().Done():
		// The fetch keeps running; only this caller gave up waiting.
		log.WithField("request_id", c.GetString("request_id")).Debug("client left before fetch settled")
	}
}

// ============================================================================
// Fetch Log
// ============================================================================

func (h *Handler) ListFetches(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidLimit.Error()})
		return
	}

	records, err := h.gallerySvc.RecentFetches(c.Request.Context(), limit)
	if err != nil {
		logDomainError(err, "list fetches failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FetchRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.ToFetchRecordResponse(rec))
	}

	c.JSON(http.StatusOK, dto.ListFetchRecordsResponse{
		Items: items,
		Total: len(items),
	})
}
