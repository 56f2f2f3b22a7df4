package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/indrishabhtech/ap/internal/probe"
	"github.com/indrishabhtech/ap/internal/proxy"
	apredis "github.com/indrishabhtech/ap/internal/redis"
	"github.com/indrishabhtech/ap/internal/transport/httpdto"
	"github.com/indrishabhtech/ap/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DownloadHandler serves the probe endpoint and the attachment-forcing
// download proxy.
type DownloadHandler struct {
	prober     *probe.Prober
	downloader *proxy.Downloader
	cache      *apredis.ProbeCache // nil when redis is not configured
	logger     *logger.Logger
}

func NewDownloadHandler(prober *probe.Prober, downloader *proxy.Downloader, cache *apredis.ProbeCache, l *logger.Logger) *DownloadHandler {
	return &DownloadHandler{prober: prober, downloader: downloader, cache: cache, logger: l}
}

// Probe returns best-effort {mimeType, sizeBytes} for a URL. Cache
// failures are swallowed; the probe itself never errors.
func (h *DownloadHandler) Probe(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("url query parameter is required", httpdto.CodeInvalidRequest))
		return
	}
	ctx := c.Request.Context()

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, rawURL)
		if err != nil {
			h.warnf("probe cache read failed: %s", err)
		} else if cached != nil {
			c.JSON(http.StatusOK, httpdto.NewSuccessResponse(*cached))
			return
		}
	}

	res := h.prober.Probe(ctx, rawURL)

	if h.cache != nil {
		if err := h.cache.Set(ctx, rawURL, res); err != nil {
			h.warnf("probe cache write failed: %s", err)
		}
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(res))
}

// External streams a remote resource with the disposition rewritten to
// attachment. Errors use plain text: once the body starts there is no way
// to send a JSON envelope, so the endpoint stays consistent throughout.
func (h *DownloadHandler) External(c *gin.Context) {
	rawURL := c.Query("url")
	if err := h.downloader.ValidateURL(rawURL); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.downloader.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		h.warnf("external download fetch failed: %s", err)
		c.String(http.StatusInternalServerError, "failed to fetch remote file")
		return
	}
	defer resp.Body.Close()

	name := proxy.SanitizeFilename(proxy.Filename(resp, rawURL))
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Header("Content-Type", contentType)
	if resp.ContentLength >= 0 {
		c.Header("Content-Length", strconv.FormatInt(resp.ContentLength, 10))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// Headers are committed; the only option is to drop the
		// connection and stop pulling from upstream.
		h.warnf("external download aborted mid-stream: %s", err)
		c.Abort()
	}
}

func (h *DownloadHandler) warnf(template string, args ...interface{}) {
	log := h.logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if log != nil {
		log.Warnf(template, args...)
	}
}
