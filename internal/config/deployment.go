// Where: internal/config/deployment.go
// What: Deployment manifest schema and codec.
// Why: Model the environment-specific deployment document referenced by capsule.toml.
package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Deployment represents the deployment manifest referenced by the project
// manifest. The tool passes it through to deployment commands; the resolver
// only loads it.
type Deployment struct {
	Lock      string     `toml:"lock,omitempty"`
	Cells     []Cell     `toml:"cells,omitempty"`
	DepGroups []DepGroup `toml:"dep_groups,omitempty"`
}

// Cell describes a single deployable contract cell.
type Cell struct {
	Name         string       `toml:"name"`
	EnableTypeID bool         `toml:"enable_type_id,omitempty"`
	Location     CellLocation `toml:"location"`
}

// CellLocation names the built artifact backing a cell.
type CellLocation struct {
	File string `toml:"file"`
}

// DepGroup groups cells that are deployed together.
type DepGroup struct {
	Name  string   `toml:"name"`
	Cells []string `toml:"cells"`
}

// ParseDeployment decodes a deployment manifest.
func ParseDeployment(data []byte) (Deployment, error) {
	var dep Deployment
	if err := toml.Unmarshal(data, &dep); err != nil {
		return Deployment{}, err
	}
	return dep, nil
}
