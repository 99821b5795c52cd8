package httpserver

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"coolbreeze/internal/catalog"
	"coolbreeze/internal/domain"
	"github.com/gin-gonic/gin"
)

// listProductsHandler serves the catalog, optionally filtered by the same
// pure function the frontend uses: inclusive price interval AND any-overlap
// feature tags. Without query parameters the full catalog comes back.
func listProductsHandler(src CatalogSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		priceRange := catalog.PriceRange{Min: 0, Max: math.MaxInt64}
		if v := c.Query("minPrice"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice", "code": codeInvalidRequest})
				return
			}
			priceRange.Min = n
		}
		if v := c.Query("maxPrice"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice", "code": codeInvalidRequest})
				return
			}
			priceRange.Max = n
		}

		var selected []string
		if v := c.Query("features"); v != "" {
			for _, f := range strings.Split(v, ",") {
				if trimmed := strings.TrimSpace(f); trimmed != "" {
					selected = append(selected, trimmed)
				}
			}
		}

		products := catalog.Filter(src.Products(), priceRange, selected)
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func featureTagsHandler(src CatalogSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags := src.FeatureTags()
		c.JSON(http.StatusOK, gin.H{"features": tags})
	}
}

func getProductHandler(src CatalogSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := src.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "code": codeNotFound})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}
