package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/middleware"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

// parseIDParam parses a numeric path parameter, writing a 400 response and
// returning false when it is not a positive integer.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(name+" must be a positive number"))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, writing a 400 response and returning false
// on malformed input.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid request data: "+err.Error()))
		return false
	}
	return true
}
