// Package idgen produces probabilistically-unique string identifiers for new
// records: a base-36 millisecond timestamp joined with a random suffix. Two
// calls in the same process are overwhelmingly likely to differ; collisions
// are neither detected nor retried.
package idgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 8

// NewID returns an identifier such as "m1x2z9kq-3f8a91bc".
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
	return ts + "-" + random
}
