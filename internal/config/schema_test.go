// Where: internal/config/schema_test.go
// What: Tests for deployment schema validation.
// Why: Malformed deployment documents should be caught before deployment runs.
package config

import (
	"strings"
	"testing"
)

func TestValidateDeploymentOK(t *testing.T) {
	doc := `[[cells]]
name = "token-vault"
enable_type_id = false
location = { file = "build/release/token-vault" }

[[dep_groups]]
name = "core"
cells = ["token-vault"]
`
	if err := ValidateDeployment([]byte(doc)); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateDeploymentMissingLocation(t *testing.T) {
	doc := `[[cells]]
name = "token-vault"
`
	err := ValidateDeployment([]byte(doc))
	if err == nil {
		t.Fatal("expected schema violation for missing location")
	}
}

func TestValidateDeploymentNotTOML(t *testing.T) {
	err := ValidateDeployment([]byte("cells = [broken"))
	if err == nil || !strings.Contains(err.Error(), "decode deployment") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
