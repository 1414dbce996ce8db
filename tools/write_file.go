package tools

import (
	"context"
	"fmt"

	"hostbridge/internal/fsops"
)

type WriteFileInput struct {
	Path    string `json:"path" jsonschema_description:"Destination file path; missing parent directories are created."`
	Content string `json:"content" jsonschema_description:"Text content to write."`
}

var WriteFileDefinition = ToolDefinition{
	Name:        "write_file",
	Description: "Write text content to a file, creating parent directories as needed and overwriting any existing file.",
	InputSchema: WriteFileInputSchema,
	Handler:     WriteFile,
}

var WriteFileInputSchema = GenerateSchema[WriteFileInput]()

// WriteFile writes the content and confirms with the destination path.
func WriteFile(ctx context.Context, args Arguments) (string, error) {
	path := args.String("path")
	if err := fsops.WriteFile(path, args.String("content")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully wrote to %s", path), nil
}
