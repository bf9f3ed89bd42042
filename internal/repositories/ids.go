package repositories

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed identifier such as "pi_3f2c...".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
