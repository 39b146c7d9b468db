package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateSessionID creates a unique UI session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20251217_205106_a7b3
func GenerateSessionID() string {
	return sessionIDAt(time.Now())
}

func sessionIDAt(now time.Time) string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID extracts the short ID (last 4 hex chars) from a full session ID.
// Example: "20251217_205106_a7b3" -> "a7b3"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}
