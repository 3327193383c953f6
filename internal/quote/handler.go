package quote

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type QuoteReq struct {
	Items []ItemInput `json:"items" binding:"required,min=1,dive"`
}

// Quote is the authoritative price preview: the client may mirror the
// computation for display, but this response is what checkout will bill.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	q, err := h.svc.Quote(c.Request.Context(), req.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quote"})
		return
	}
	if !q.OK() {
		c.JSON(http.StatusUnprocessableEntity, q)
		return
	}
	c.JSON(http.StatusOK, q)
}
