// Package controllers binds HTTP requests to services and maps service
// errors onto status codes.
package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBadRequest):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUpstream):
		resp.Upstream(c, err)
	default:
		resp.ServerError(c, err)
	}
}

// uintParam parses a numeric path parameter; on failure it writes the
// 400 itself and returns ok=false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func boolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
