package handlers

import (
	"errors"
	"net/http"
	"time"

	"dompet-api/models"
	"dompet-api/services"
	"dompet-api/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the principal.
const ContextUserKey = "user"

func currentUser(c *gin.Context) *models.Principal {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.Principal)
	if !ok {
		return nil
	}
	return user
}

// respondError translates a service failure verbatim; anything untyped is a
// generic 500 so store errors never leak schema details.
func respondError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"error": svcErr.Message})
		return
	}
	utils.LogError("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date: " + value)
}

// parseDateRange reads the optional startDate/endDate query pair. Both are
// required for a window; a single bound is dropped.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	startRaw := c.Query("startDate")
	endRaw := c.Query("endDate")
	if startRaw == "" || endRaw == "" {
		return nil, nil, nil
	}

	start, err := parseDate(startRaw)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
