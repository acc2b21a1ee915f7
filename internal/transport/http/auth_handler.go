package handlers

import (
	"errors"
	"net/http"

	"studyhub-backend/internal/application/usecase"
	"studyhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  *usecase.AuthUseCase
	reset *usecase.ResetUseCase
}

func NewAuthHandler(auth *usecase.AuthUseCase, reset *usecase.ResetUseCase) *AuthHandler {
	return &AuthHandler{auth: auth, reset: reset}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := h.auth.Register(c, req.FirstName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"userId": userID}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := h.auth.Login(c, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"accessToken": token}})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Поле 'email' обязательно"})
		return
	}

	if err := h.reset.ForgotPassword(c, req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "This Email is not registered with us."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error sending password reset email."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset email sent successfully."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token           string `json:"token" binding:"required"`
		Password        string `json:"password" binding:"required,min=8"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	err := h.reset.ResetPassword(c, req.Token, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password and Confirm Password do not match."})
		case errors.Is(err, domain.ErrInvalidOrExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired token."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error resetting password."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful."})
}
