package display

import (
	"encoding/json"
	"flag"
)

// MarshalJSON marshals JSON compactly for machine callers and indented for
// people
func MarshalJSON(v interface{}) ([]byte, error) {
	// Golden comparisons in tests expect the indented form
	if flag.Lookup("test.v") != nil {
		return json.MarshalIndent(v, "", "  ")
	}

	if IsMachineCaller() {
		return json.Marshal(v)
	}

	return json.MarshalIndent(v, "", "  ")
}
