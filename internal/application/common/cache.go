package common

// AllTeamsCacheKey holds the ordered team list. Every team write removes it.
const AllTeamsCacheKey = "teams:all"

// CacheGet reads key from cache and asserts it to T.
// A value of the wrong type counts as a miss.
func CacheGet[T any](cache Cache, key string) (T, bool) {
	var zero T
	value, ok := cache.TryGet(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
