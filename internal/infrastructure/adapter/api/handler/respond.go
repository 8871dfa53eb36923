package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/dto"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/middleware"
)

// respondError maps a domain error to its HTTP shape. Store errors get a
// generic headline with the detail in the message field; everything else
// surfaces the sentinel text directly.
func respondError(c *gin.Context, err error) {
	status := domainerr.HTTPStatus(err)

	switch {
	case domainerr.IsStoreError(err):
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Error:   "Database error",
			Message: err.Error(),
		})
	case status == http.StatusForbidden:
		c.JSON(status, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Unauthorized",
		})
	default:
		c.JSON(status, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: err.Error(),
		})
	}
}

// mustIdentity fetches the verified caller identity set by the auth
// middleware. A missing identity means a route was wired without
// RequireAuth, which is a server bug, not a client error.
func mustIdentity(c *gin.Context) (entity.Identity, bool) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(domainerr.ErrInternalServer),
			Error: "Internal server error",
		})
		return entity.Identity{}, false
	}
	return identity, true
}
