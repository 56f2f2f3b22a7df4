package handler

import (
	"errors"
	"net/http"

	"github.com/indrishabhtech/ap/internal/transport/httpdto"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps sentinel errors to HTTP statuses; anything unexpected
// becomes a 500 with the underlying message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, aperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error(), httpdto.CodeNotFound))
	case errors.Is(err, aperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), httpdto.CodeInvalidRequest))
	case errors.Is(err, aperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(err.Error(), httpdto.CodeUnauthorized))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error(), httpdto.CodeRequestFailed))
	}
}
