package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// ResponseKey derives a stable cache key for a view response from the sorted
// query parameters, so parameter order never splits the cache.
func ResponseKey(prefix, view string, query url.Values) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		values := append([]string(nil), query[key]...)
		sort.Strings(values)
		for _, value := range values {
			builder.WriteString(key)
			builder.WriteByte('=')
			builder.WriteString(value)
			builder.WriteByte('&')
		}
	}

	digest := sha256.Sum256([]byte(builder.String()))
	return prefix + "_" + view + "_" + hex.EncodeToString(digest[:])
}
