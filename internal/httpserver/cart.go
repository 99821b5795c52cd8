package httpserver

import (
	"errors"
	"net/http"

	"coolbreeze/internal/domain"
	"github.com/gin-gonic/gin"
)

type addCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func listCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		items, err := svc.List(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
	}
}

func addCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		var in addCartRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required", "code": codeInvalidRequest})
			return
		}
		item, err := svc.Add(c.Request.Context(), u.ID, in.ProductID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				// Duplicate adds are an informational notice, not a failure.
				c.JSON(http.StatusConflict, gin.H{"error": "product already in cart", "code": codeAlreadyExists})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "code": codeNotFound})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

func removeCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		err := svc.Remove(c.Request.Context(), u.ID, c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Already gone; the client re-fetches and moves on.
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found", "code": codeNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
