package httpserver

import (
	"net/http"

	"bookstore/internal/domain"
	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func listCategoriesHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := categories.List(c.Request.Context(), parsePageRequest(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// categoryBooksHandler lists the books filed under a category. An empty
// page reads as not found rather than an empty listing.
func categoryBooksHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := categories.Books(c.Request.Context(), parsePageRequest(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func createCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		created, err := categories.Create(c.Request.Context(), domain.Category{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		updated, err := categories.Update(c.Request.Context(), domain.Category{
			ID:          c.Param("id"),
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCategoryHandler(categories CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
