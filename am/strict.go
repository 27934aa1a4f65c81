package am

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/nldates/errors"
)

// UnknownKeys decodes a TOML file against the Config schema and returns the
// keys the schema does not know, sorted. A typo such as "weekstart" would
// otherwise be silently ignored by the cascade.
func UnknownKeys(path string) ([]string, error) {
	var schema Config
	md, err := toml.DecodeFile(path, &schema)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	undecoded := md.Undecoded()
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys, nil
}

// CheckFiles runs UnknownKeys over every config file in the cascade and
// returns the unknown keys per file
func CheckFiles() (map[string][]string, error) {
	report := make(map[string][]string)
	for _, path := range ConfigPaths() {
		keys, err := UnknownKeys(path)
		if err != nil {
			return nil, err
		}
		if len(keys) > 0 {
			report[path] = keys
		}
	}
	return report, nil
}
