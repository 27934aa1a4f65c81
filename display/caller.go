package display

import (
	"os"
	"strings"
)

// CallerEnv names the variable scripts set to ask for machine output
const CallerEnv = "NLDATES_CALLER"

// IsMachineCaller reports whether output is consumed by a program rather
// than a person. Editor integrations set NLDATES_CALLER=script (or plugin).
func IsMachineCaller() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(CallerEnv))) {
	case "script", "plugin", "machine":
		return true
	}
	return false
}
