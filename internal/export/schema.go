// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"
)

const schemaVersion = "http://json-schema.org/draft-07/schema#"

// Schema reflects the JSON Schema of Document. Every field is required and
// unknown properties are rejected.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&Document{})
	s.Version = schemaVersion
	s.Title = "Conversation flow export"
	return s
}

// SchemaJSON returns the JSON form of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := Schema().MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal schema")
	}
	return data, nil
}

// Validate checks a JSON export document against Schema.
func Validate(data []byte) error {
	schema, err := SchemaJSON()
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return eris.Wrap(err, "export: validate")
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return eris.Errorf("export: document does not match schema: %s", strings.Join(msgs, "; "))
}
