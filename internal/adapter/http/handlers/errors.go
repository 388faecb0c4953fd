package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nexus_settlement/internal/usecase/interfaces"
	"nexus_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the authenticated caller id, set by the gateway.
const HeaderUserID = "X-User-Id"

var errMissingUserID = pkg.NewDomainErrorSimple("MISSING_USER_ID", "X-User-Id header is required", http.StatusBadRequest)

func callerID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}

// writeError answers with the AppError body. The cause, if any, is attached to
// the gin context so the request log carries it.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCollaboratorError covers the adapter errors shared by both use cases.
func mapCollaboratorError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, interfaces.ErrWalletRejected):
		return pkg.NewDomainError("WALLET_REJECTED", err.Error(), err, http.StatusBadRequest), true
	case errors.Is(err, interfaces.ErrUpstreamRejected):
		return pkg.NewDomainError("UPSTREAM_REJECTED", err.Error(), err, http.StatusBadRequest), true
	case errors.Is(err, interfaces.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "A dependent service is unavailable", err, http.StatusBadGateway), true
	default:
		return nil, false
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
