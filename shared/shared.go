package shared

import (
	"strings"
	"tempo/shared/constant"
)

// BuildCacheKey joins the application prefix, a key kind and its parts.
// Empty parts are kept so positional keys stay unambiguous.
func BuildCacheKey(kind string, parts ...string) string {
	segments := make([]string, 0, len(parts)+2) //nolint:mnd
	segments = append(segments, constant.CacheKeyPrefix, kind)
	segments = append(segments, parts...)

	return strings.Join(segments, constant.CacheKeySeparator)
}
