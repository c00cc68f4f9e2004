package resource

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

const cursorPrefix = "o:"

// encodeCursor returns the opaque page token for the page starting at offset.
// Format: base64url("o:" + offset).
func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// decodeCursor parses a page token. An empty token means the first page.
func decodeCursor(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, domain.NewValidationError("pageToken", "invalid page token")
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, domain.NewValidationError("pageToken", "invalid page token")
	}
	offset, err := strconv.Atoi(s)
	if err != nil || offset < 0 {
		return 0, domain.NewValidationError("pageToken", "invalid page token")
	}
	return offset, nil
}
