package handler

import (
	"net/http"

	"github.com/indrishabhtech/ap/internal/services"
	"github.com/indrishabhtech/ap/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type BillboardHandler struct {
	service *services.BillboardService
}

func NewBillboardHandler(service *services.BillboardService) *BillboardHandler {
	return &BillboardHandler{service: service}
}

func (h *BillboardHandler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(b))
}

// Put upserts the singleton message; create and update are one operation.
func (h *BillboardHandler) Put(c *gin.Context) {
	var req httpdto.UpdateBillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", httpdto.CodeInvalidRequest))
		return
	}
	b, err := h.service.Set(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(b))
}

func (h *BillboardHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}
