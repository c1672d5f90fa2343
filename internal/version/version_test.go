// Where: internal/version/version_test.go
// What: Tests for the compatibility policy.
// Why: The policy gates every project load.
package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestCompatible(t *testing.T) {
	cases := []struct {
		tool    string
		project string
		want    bool
	}{
		{"1.2.0", "1.0.0", true},
		{"1.2.0", "1.2.0", true},
		{"1.0.0", "1.2.0", false}, // tool older than project
		{"2.0.0", "1.0.0", false}, // major mismatch
		{"1.0.0", "2.0.0", false},
		{"0.10.0", "0.1.0", true},
		{"0.1.0", "0.10.0", false},
	}
	for _, tc := range cases {
		tool := semver.MustParse(tc.tool)
		project := semver.MustParse(tc.project)
		if got := Compatible(tool, project); got != tc.want {
			t.Errorf("Compatible(%s, %s) = %v, want %v", tc.tool, tc.project, got, tc.want)
		}
	}
}

func TestCurrentMatchesConstant(t *testing.T) {
	if Current().String() != Version {
		t.Fatalf("Current() = %s, want %s", Current(), Version)
	}
}
