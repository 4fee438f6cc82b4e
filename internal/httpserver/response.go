package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/domain"
	cartsvc "bookstore/internal/service/cart"
	usersvc "bookstore/internal/service/user"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates service errors into HTTP statuses. Anything not
// in the taxonomy is a 500 with a generic body so internals do not leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, domain.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Shopping cart is empty"})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, cartsvc.ErrQuantityNotPositive):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// parsePageRequest reads page and size query params. Page numbers are
// zero-based; a missing or unparsable size falls back to the default.
func parsePageRequest(c *gin.Context) domain.PageRequest {
	page := domain.PageRequest{Size: defaultPageSize}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		page.Number = n
	}
	if s, err := strconv.Atoi(c.Query("size")); err == nil && s > 0 {
		page.Size = s
	}
	return page
}
