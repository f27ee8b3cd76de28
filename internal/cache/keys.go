package cache

import "strings"

const (
	GlobalKeyPrefix = "omrstudio"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionSnapshotKey is the key holding a session's serialized region
// snapshot.
func SessionSnapshotKey(sessionID string) string {
	return GenerateCacheKey("session", "snapshot", sessionID)
}

// SessionMetaKey is the key of the hash holding a session's creation
// parameters, kept alongside the snapshot so a session can be resumed
// without resupplying them.
func SessionMetaKey(sessionID string) string {
	return GenerateCacheKey("session", "meta", sessionID)
}
