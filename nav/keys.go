package nav

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// KeyGenerator mints node keys unique within a tree. Implementations must
// never return the same key twice for one generator instance.
type KeyGenerator func() string

// NewKey is the default generator: a short random identifier.
func NewKey() string {
	return uuid.NewString()[:8]
}

// SequentialKeys returns a deterministic generator for tests and
// reproducible demos: prefix-1, prefix-2, ...
func SequentialKeys(prefix string) KeyGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
