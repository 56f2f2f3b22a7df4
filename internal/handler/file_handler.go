package handler

import (
	"net/http"
	"strconv"

	"github.com/indrishabhtech/ap/internal/domain/file"
	"github.com/indrishabhtech/ap/internal/services"
	"github.com/indrishabhtech/ap/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultListLimit = 100

type FileHandler struct {
	service *services.FileService
}

func NewFileHandler(service *services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload handles multipart binary uploads.
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("file form field is required", httpdto.CodeInvalidRequest))
		return
	}
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unable to read uploaded file", httpdto.CodeInvalidRequest))
		return
	}
	defer src.Close()

	rec, err := h.service.Upload(c.Request.Context(), services.UploadInput{
		OriginalName: fh.Filename,
		Category:     c.PostForm("category"),
		Description:  c.PostForm("description"),
		ContentType:  fh.Header.Get("Content-Type"),
		SizeBytes:    fh.Size,
		Body:         src,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(rec))
}

// Link registers an external URL without uploading bytes.
func (h *FileHandler) Link(c *gin.Context) {
	var req httpdto.RegisterLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", httpdto.CodeInvalidRequest))
		return
	}
	rec, err := h.service.RegisterLink(c.Request.Context(), services.LinkInput{
		URL:          req.URL,
		OriginalName: req.OriginalName,
		Category:     req.Category,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(rec))
}

func (h *FileHandler) List(c *gin.Context) {
	var category file.Category
	if raw := c.Query("category"); raw != "" {
		parsed, ok := file.ParseCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid category", httpdto.CodeInvalidRequest))
			return
		}
		category = parsed
	}
	limit := int64(defaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	items, err := h.service.List(c.Request.Context(), category, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"files": items}))
}

func (h *FileHandler) GetByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid file id", httpdto.CodeInvalidRequest))
		return
	}
	rec, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(rec))
}

func (h *FileHandler) Patch(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid file id", httpdto.CodeInvalidRequest))
		return
	}
	var req httpdto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", httpdto.CodeInvalidRequest))
		return
	}
	rec, err := h.service.UpdateMeta(c.Request.Context(), id, file.MetaPatch{
		OriginalName: req.OriginalName,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(rec))
}

func (h *FileHandler) Delete(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid file id", httpdto.CodeInvalidRequest))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

// Reset clears every file record, deleting stored blobs best-effort.
func (h *FileHandler) Reset(c *gin.Context) {
	deleted, err := h.service.Reset(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"deleted": deleted}))
}
