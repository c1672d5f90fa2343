// Where: internal/config/schema.go
// What: JSON-Schema validation for deployment manifests.
// Why: Catch malformed deployment documents before deployment commands touch them.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/deployment.schema.yaml
var deploymentSchemaYAML []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateDeployment checks a raw deployment document against the embedded
// schema. The document is TOML; it is decoded and round-tripped through JSON
// so the schema engine sees canonical JSON types.
func ValidateDeployment(content []byte) error {
	sch, err := loadDeploymentSchema()
	if err != nil {
		return err
	}

	var decoded map[string]any
	if err := toml.Unmarshal(content, &decoded); err != nil {
		return fmt.Errorf("decode deployment: %w", err)
	}

	jsonData, err := json.Marshal(decoded)
	if err != nil {
		return fmt.Errorf("canonicalize deployment: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("canonicalize deployment: %w", err)
	}

	return sch.Validate(document)
}

func loadDeploymentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		jsonData, err := yaml.YAMLToJSON(deploymentSchemaYAML)
		if err != nil {
			schemaErr = fmt.Errorf("convert schema yaml to json: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("deployment.schema.json", bytes.NewReader(jsonData)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("deployment.schema.json")
	})
	return compiledSchema, schemaErr
}
