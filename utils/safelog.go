// Safe logging: masks personal and financial data in production so balances
// and addresses never land in log aggregators.
package utils

import (
	"log"
	"os"
	"strings"
)

var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production" ||
	os.Getenv("ENV") == "production"

// MaskEmail keeps the first character and the domain: j***@example.com
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskAmount hides monetary values in production logs.
func MaskAmount(cents int64) string {
	if !IsProduction {
		return FormatCents(cents)
	}
	return "***"
}

// MaskID keeps enough of a UUID to correlate log lines without exposing it.
func MaskID(id string) string {
	if !IsProduction || len(id) < 8 {
		return id
	}
	return id[:8] + "..."
}

func LogInfo(format string, args ...interface{}) {
	log.Printf("ℹ️  "+format, args...)
}

func LogWarn(format string, args ...interface{}) {
	log.Printf("⚠️  "+format, args...)
}

func LogError(format string, args ...interface{}) {
	log.Printf("❌ "+format, args...)
}

func LogDebug(format string, args ...interface{}) {
	if IsProduction {
		return
	}
	log.Printf("🔍 "+format, args...)
}
