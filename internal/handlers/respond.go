package handlers

import (
	"log"
	"net/http"

	"github.com/Luisi123/budget-tracking-test/internal/reporting"
	"github.com/Luisi123/budget-tracking-test/internal/types"
	"github.com/gin-gonic/gin"
)

func respondData(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, types.Envelope{Ok: true, Data: data})
}

func respondOK(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, types.Envelope{Ok: true})
}

func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, types.Envelope{Ok: false, Code: types.CodeInvalidBody})
}

func respondNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, types.Envelope{Ok: false, Code: types.CodeNotFound})
}

// respondServerError captures the error for reporting before answering; the
// capture must never block or alter the response.
func respondServerError(ctx *gin.Context, err error) {
	log.Printf("Unexpected error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	reporting.Capture(err)
	ctx.JSON(http.StatusInternalServerError, types.Envelope{
		Ok:    false,
		Code:  types.CodeServerError,
		Error: err.Error(),
	})
}
