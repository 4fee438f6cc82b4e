package httpserver

import (
	"net/http"

	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type bookRequest struct {
	Title       string          `json:"title" binding:"required"`
	Author      string          `json:"author" binding:"required"`
	ISBN        string          `json:"isbn" binding:"required,isbn13"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	CoverImage  string          `json:"coverImage"`
	CategoryIDs []string        `json:"categoryIds"`
}

func (r bookRequest) toDomain(id string) domain.Book {
	return domain.Book{
		ID:          id,
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       r.Price,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		CategoryIDs: r.CategoryIDs,
	}
}

func listBooksHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := books.List(c.Request.Context(), parsePageRequest(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// searchBooksHandler accepts title, author, isbn, bottomPrice and upperPrice
// query params. Blank params are not part of the filter; a search with none
// of them returns the full catalog page.
func searchBooksHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := spec.SearchParams{
			Title:  c.Query("title"),
			Author: c.Query("author"),
			ISBN:   c.Query("isbn"),
		}
		var err error
		if raw := c.Query("bottomPrice"); raw != "" {
			if params.BottomPrice, err = decimal.NewFromString(raw); err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "bottomPrice is not a number"})
				return
			}
		}
		if raw := c.Query("upperPrice"); raw != "" {
			if params.UpperPrice, err = decimal.NewFromString(raw); err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "upperPrice is not a number"})
				return
			}
		}
		page, err := books.Search(c.Request.Context(), params, parsePageRequest(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getBookHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		book, err := books.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, book)
	}
}

func createBookHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "price must be positive"})
			return
		}
		created, err := books.Create(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateBookHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		if !req.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "price must be positive"})
			return
		}
		updated, err := books.Update(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteBookHandler(books BookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := books.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
