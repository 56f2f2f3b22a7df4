package handler

import (
	"net/http"
	"strconv"

	"github.com/indrishabhtech/ap/internal/services"
	"github.com/indrishabhtech/ap/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type DeviceLogHandler struct {
	service *services.DeviceLogService
}

func NewDeviceLogHandler(service *services.DeviceLogService) *DeviceLogHandler {
	return &DeviceLogHandler{service: service}
}

func (h *DeviceLogHandler) Create(c *gin.Context) {
	var req httpdto.CreateDeviceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", httpdto.CodeInvalidRequest))
		return
	}
	entry, err := h.service.Record(c.Request.Context(), req.Name, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(entry))
}

func (h *DeviceLogHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"logs": entries}))
}

func (h *DeviceLogHandler) Clear(c *gin.Context) {
	deleted, err := h.service.Clear(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"deleted": deleted}))
}
