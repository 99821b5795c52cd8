package httpserver

import (
	"errors"
	"net/http"

	"coolbreeze/internal/domain"
	"coolbreeze/internal/service/enquiry"
	"github.com/gin-gonic/gin"
)

type productEnquiryRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type cartEnquiryRequest struct {
	ItemID string `json:"itemId"`
}

// productEnquiryHandler formats a single-product enquiry and returns the
// outbound messaging link. No auth needed; the catalog is public.
func productEnquiryHandler(src CatalogSource, linker EnquiryLinker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productEnquiryRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required", "code": codeInvalidRequest})
			return
		}
		p, err := src.Get(in.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "code": codeNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		message := enquiry.SingleMessage(enquiry.ItemFromProduct(*p))
		c.JSON(http.StatusOK, gin.H{"message": message, "url": linker.Link(message)})
	}
}

// cartEnquiryHandler formats an enquiry for the signed-in user's cart: one
// row when itemId is given, otherwise the whole cart as a numbered list.
func cartEnquiryHandler(svc CartService, linker EnquiryLinker) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		var in cartEnquiryRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "code": codeInvalidRequest})
				return
			}
		}

		items, err := svc.List(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty", "code": codeInvalidRequest})
			return
		}

		var message string
		if in.ItemID != "" {
			var found *domain.CartItem
			for i := range items {
				if items[i].ID == in.ItemID {
					found = &items[i]
					break
				}
			}
			if found == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found", "code": codeNotFound})
				return
			}
			message = enquiry.SingleMessage(enquiry.ItemFromCartItem(*found))
		} else {
			enquiryItems := make([]enquiry.Item, 0, len(items))
			for _, item := range items {
				enquiryItems = append(enquiryItems, enquiry.ItemFromCartItem(item))
			}
			message = enquiry.MultiMessage(enquiryItems)
		}

		c.JSON(http.StatusOK, gin.H{"message": message, "url": linker.Link(message)})
	}
}
