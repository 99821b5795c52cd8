package httpserver

import (
	"errors"
	"net/http"

	"coolbreeze/internal/domain"
	authsvc "coolbreeze/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in authsvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "code": codeInvalidRequest})
			return
		}
		u, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered", "code": codeAlreadyExists})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeInvalidRequest})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": u})
	}
}

func loginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "code": codeInvalidRequest})
			return
		}
		u, access, refresh, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password", "code": codeAuthRequired})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":         u,
			"accessToken":  access,
			"refreshToken": refresh,
			"expiresIn":    svc.AccessTTLSeconds(),
		})
	}
}

func logoutHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), currentToken(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
