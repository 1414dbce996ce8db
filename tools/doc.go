// Package tools defines the fixed tool catalog and its handlers.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Six host tools: read_file, write_file, list_directory, system_info,
//     http_request, run_command.
//   - Invariant: the catalog is immutable after process start; Registry()
//     returns it in the same order on every call.
package tools
