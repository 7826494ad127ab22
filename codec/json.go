package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// The path_results table stores the node sequence as a JSON array, so JSON is
// both the default and the interoperability baseline: rows written here stay
// readable by the other layers of the pipeline that consume the same store.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
var Default Codec = JSON{}
