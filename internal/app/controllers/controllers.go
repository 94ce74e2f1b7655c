package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A malformed id is reported as
// notFound, since no record can carry it.
func parseID(ctx *gin.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
