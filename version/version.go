// Package version reports the nldates build and the grammar it was built
// with. Two binaries with the same grammar digest classify every phrase the
// same way, whatever their commit.
package version

import (
	"fmt"
	"runtime"

	"github.com/teranos/nldates/temporal"
)

// Set at build time via -ldflags "-X github.com/teranos/nldates/version.Version=..."
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// Info describes a build
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Grammar    string `json:"grammar"` // digest of the phrase rule table
	Rules      int    `json:"rules"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the running binary's build information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Grammar:    temporal.GrammarDigest(),
		Rules:      len(temporal.RuleNames()),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	s := fmt.Sprintf("nldates %s (commit %s, built %s", i.Version, i.CommitHash, i.BuildTime)
	if i.Grammar != "" {
		s += fmt.Sprintf(", grammar %s/%d", i.Grammar, i.Rules)
	}
	return s + ")"
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
