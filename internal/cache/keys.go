package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "satprep"

	ServiceFavorites = "favorites"
	ServiceTutor     = "tutor"
)

// GenerateCacheKey builds prefix:service:type:id, with any params joined by "_" as a final segment
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// FavoritesKey is the hash holding a user's bookmarked tutor responses
func FavoritesKey(userID string) string {
	return GenerateCacheKey(ServiceFavorites, "user", userID)
}

// TutorReplyKey addresses a cached tutor reply for a conversation prompt.
// The prompt is hashed so arbitrary user text never ends up in a key.
func TutorReplyKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return GenerateCacheKey(ServiceTutor, "reply", hex.EncodeToString(sum[:]), model)
}
