// Where: internal/config/deployment_test.go
// What: Tests for the deployment manifest codec.
// Why: Cells and dep groups must decode from both inline and full tables.
package config

import "testing"

func TestParseDeployment(t *testing.T) {
	doc := `lock = "deployment-lock.toml"

[[cells]]
name = "token-vault"
enable_type_id = true
location = { file = "build/release/token-vault" }

[[cells]]
name = "oracle"

[cells.location]
file = "build/release/oracle"

[[dep_groups]]
name = "core"
cells = ["token-vault", "oracle"]
`
	dep, err := ParseDeployment([]byte(doc))
	if err != nil {
		t.Fatalf("parse deployment: %v", err)
	}
	if dep.Lock != "deployment-lock.toml" {
		t.Errorf("lock = %q", dep.Lock)
	}
	if len(dep.Cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(dep.Cells))
	}
	if dep.Cells[1].Name != "oracle" || dep.Cells[1].Location.File != "build/release/oracle" {
		t.Errorf("second cell decoded wrong: %#v", dep.Cells[1])
	}
	if len(dep.DepGroups) != 1 || len(dep.DepGroups[0].Cells) != 2 {
		t.Errorf("dep groups decoded wrong: %#v", dep.DepGroups)
	}
}
