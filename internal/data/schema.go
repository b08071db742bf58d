package data

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/udisondev/huntercalc/internal/model"
)

// Schema describes the snapshot format accepted by LoadSnapshot and the
// HTTP API.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
	}
	schema := reflector.Reflect(new(model.Stats))
	schema.Title = "Hunter Calc Stats Snapshot"
	schema.Description = "Aggregated equipment and skill values read by the stats calculators"
	return schema
}

// SchemaJSON returns Schema indented for writing to disk.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
