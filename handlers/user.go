package handlers

import (
	"database/sql"
	"net/http"

	"dompet-api/models"
	"dompet-api/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	DB *sql.DB
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user := currentUser(c)

	var profile models.User
	err := h.DB.QueryRow(`
		SELECT id, username, email, totp_enabled, created_at, updated_at
		FROM users WHERE id = $1
	`, user.ID).Scan(
		&profile.ID, &profile.Username, &profile.Email,
		&profile.TOTPEnabled, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// SetupTOTP issues a fresh secret and stores it encrypted at rest; 2FA only
// turns on after the user proves possession via VerifyTOTP.
func (h *UserHandler) SetupTOTP(c *gin.Context) {
	user := currentUser(c)

	secret, url, err := utils.GenerateTOTPSecret(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate secret"})
		return
	}

	encrypted, err := utils.EncryptString(secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to protect secret"})
		return
	}

	_, err = h.DB.Exec(`
		UPDATE users SET totp_secret = $1, totp_enabled = FALSE, updated_at = NOW()
		WHERE id = $2
	`, encrypted, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, models.TOTPSetupResponse{Secret: secret, URL: url})
}

func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)

	var encrypted sql.NullString
	err := h.DB.QueryRow("SELECT totp_secret FROM users WHERE id = $1", user.ID).Scan(&encrypted)
	if err != nil || !encrypted.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "2FA setup not started"})
		return
	}

	secret, err := utils.DecryptString(encrypted.String)
	if err != nil || !utils.VerifyTOTP(secret, req.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 2FA code"})
		return
	}

	_, err = h.DB.Exec("UPDATE users SET totp_enabled = TRUE, updated_at = NOW() WHERE id = $1", user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	utils.LogInfo("2FA enabled for %s", utils.MaskEmail(user.Email))
	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled"})
}

func (h *UserHandler) DisableTOTP(c *gin.Context) {
	user := currentUser(c)

	_, err := h.DB.Exec(`
		UPDATE users SET totp_secret = NULL, totp_enabled = FALSE, updated_at = NOW()
		WHERE id = $1
	`, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled"})
}
