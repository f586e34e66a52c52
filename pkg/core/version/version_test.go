package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Version", Version},
		{"Grammar", Grammar},
		{"StoreSchema", StoreSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	if info.Version != Version {
		t.Errorf("Info().Version = %v, want %v", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Info().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Info().Platform = %v, want os/arch", info.Platform)
	}
	if s := info.String(); !strings.HasPrefix(s, "whilec "+Version) {
		t.Errorf("String() = %v, want prefix %v", s, "whilec "+Version)
	}
}
