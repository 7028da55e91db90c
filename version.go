// Package masked holds release metadata for the masked input module. The
// engine lives in package mask and the terminal component in maskinput.
package masked

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the module release, SemVer without the leading v.
func Version() string { return strings.TrimSpace(rawVersion) }

// VersionTag is Version as a git tag, as printed by masked-demo --version.
func VersionTag() string { return "v" + Version() }

// ValidVersion reports whether v is SemVer 2.0.0 (no leading v).
func ValidVersion(v string) bool { return semver.MatchString(strings.TrimSpace(v)) }
