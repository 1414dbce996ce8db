package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Handler executes one tool call against the host and returns the textual
// result or an error.
type Handler func(ctx context.Context, args Arguments) (string, error)

// ToolDefinition binds a tool name to its description, input schema and
// handler. Definitions are built at process start and never mutated.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema Schema
	Handler     Handler
}

// Schema holds the generated JSON schema for a tool's input object plus the
// required property names, extracted once so dispatch can validate presence
// without re-parsing the schema.
type Schema struct {
	Raw      json.RawMessage
	Required []string
}

// GenerateSchema derives the input schema for T from its struct tags.
func GenerateSchema[T any]() Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	s := reflector.Reflect(v)
	raw, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("tools: marshal schema: %v", err))
	}
	return Schema{Raw: raw, Required: s.Required}
}

// Arguments is the untyped argument bundle of one tool call.
//
// Scalar access is deliberately loose: String coerces any scalar via
// stringification instead of rejecting a kind mismatch. The dispatcher
// enforces presence of required fields; it does not enforce primitive kinds.
type Arguments map[string]any

// String returns the value under key coerced to a string. Missing and nil
// values yield "".
func (a Arguments) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Bool returns the value under key when it is an actual boolean, false
// otherwise.
func (a Arguments) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// StringMap returns the object value under key with its members stringified.
// Non-object values yield nil.
func (a Arguments) StringMap(key string) map[string]string {
	m, ok := a[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
