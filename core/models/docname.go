package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewDocName mints a human-facing document name like "TS-3f2a9c1d".
func NewDocName(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}
