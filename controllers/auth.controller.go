package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"snackmart-backend/models"
	"snackmart-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login menangani proses login admin. Username tak dikenal dan password
// salah sengaja menghasilkan pesan yang sama.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := ctrl.Store.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.IssueToken(ctrl.PasetoSecretKey, fmt.Sprintf("%d", admin.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("adminToken", token, int(24*time.Hour/time.Second), "/", "", ctrl.Env == "production", true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}
