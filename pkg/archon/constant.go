package archon

import "time"

const (
	// DefaultMatchCount limits knowledge search results when the caller
	// does not specify a count.
	DefaultMatchCount = 5

	// FallbackContext is returned to prompts when the knowledge service
	// is unavailable. The conversation continues without RAG context.
	FallbackContext = "Контекст из базы знаний временно недоступен."

	// Search cache: identical queries within the TTL hit the LRU.
	searchCacheSize = 256
	searchCacheTTL  = 5 * time.Minute

	requestTimeout = 15 * time.Second
)
