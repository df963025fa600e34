// Package reproducible makes generated files byte-for-byte reproducible by
// honoring the SOURCE_DATE_EPOCH convention.
package reproducible

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	nowOnce sync.Once
	now     time.Time
)

func Now() time.Time {
	nowOnce.Do(func() {
		secs, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64)
		if err == nil {
			now = time.Unix(secs, 0)
		} else {
			now = time.Now()
		}
	})
	return now
}

// Stamp renders Now for embedding in generated-file comment lines.
func Stamp() string {
	return Now().UTC().Format("2006-01-02 15:04:05 UTC")
}
