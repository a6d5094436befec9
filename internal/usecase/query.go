package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeQuery canonicalizes a free-text search query: lowercased and
// trimmed. Distinct raw queries with the same normalized form deliberately
// share one cache entry.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(strings.ToLower(query))
}

// QueryHash derives the cache key for a normalized query. SHA-256 keeps the
// key stable across runs and process restarts.
func QueryHash(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
