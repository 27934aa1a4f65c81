package format

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// Strftime formats with C strftime directives.
type Strftime struct{}

// Format implements Formatter.
func (Strftime) Format(t time.Time, pattern string) string {
	return strftime.Format(pattern, t)
}
