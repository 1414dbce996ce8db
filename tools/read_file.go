package tools

import (
	"context"

	"hostbridge/internal/fsops"
)

type ReadFileInput struct {
	Path string `json:"path" jsonschema_description:"Path of the file to read."`
}

var ReadFileDefinition = ToolDefinition{
	Name:        "read_file",
	Description: "Read the contents of a file at the given path as UTF-8 text.",
	InputSchema: ReadFileInputSchema,
	Handler:     ReadFile,
}

var ReadFileInputSchema = GenerateSchema[ReadFileInput]()

// ReadFile returns the file's text content. Directory paths are rejected.
func ReadFile(ctx context.Context, args Arguments) (string, error) {
	return fsops.ReadFile(args.String("path"))
}
