package hashutils

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

func generateHash(data string) string {
	hash := sha256.New()
	hash.Write([]byte(data))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// GetCacheKey builds a stable key for a filtered count query.
func GetCacheKey(startDate, endDate time.Time, textLexems []string) string {
	key := fmt.Sprintf("%s.%s.%s", startDate, endDate, strings.Join(textLexems, "."))
	return generateHash(key)
}
