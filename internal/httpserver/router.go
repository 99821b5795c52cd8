package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog required")
	}
	if deps.CartSvc == nil || deps.AuthSvc == nil || deps.EnquirySvc == nil {
		return nil, errors.New("cart, auth and enquiry services required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = corsOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/features", featureTagsHandler(deps.Catalog))
	api.GET("/products/:id", getProductHandler(deps.Catalog))
	api.POST("/auth/signup", signupHandler(deps.AuthSvc))
	api.POST("/auth/login", loginHandler(deps.AuthSvc))
	api.POST("/enquiries", productEnquiryHandler(deps.Catalog, deps.EnquirySvc))

	authed := api.Group("")
	authed.Use(authMiddleware(deps.AuthSvc))
	authed.POST("/auth/logout", logoutHandler(deps.AuthSvc))
	authed.GET("/me", meHandler())
	authed.GET("/cart", listCartHandler(deps.CartSvc))
	authed.POST("/cart", addCartHandler(deps.CartSvc))
	authed.DELETE("/cart/:id", removeCartHandler(deps.CartSvc))
	authed.POST("/cart/enquiries", cartEnquiryHandler(deps.CartSvc, deps.EnquirySvc))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "code": codeNotFound})
	})

	return router, nil
}
