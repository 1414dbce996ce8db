package tools

import (
	"context"
	"strings"

	"hostbridge/internal/fsops"
)

type ListDirectoryInput struct {
	Path      string `json:"path" jsonschema_description:"Directory path to list."`
	Recursive bool   `json:"recursive,omitempty" jsonschema_description:"Recurse into subdirectories; recursive output contains files only."`
}

var ListDirectoryDefinition = ToolDefinition{
	Name:        "list_directory",
	Description: "List the contents of a directory as full paths, optionally recursing into subdirectories.",
	InputSchema: ListDirectoryInputSchema,
	Handler:     ListDirectory,
}

var ListDirectoryInputSchema = GenerateSchema[ListDirectoryInput]()

// ListDirectory returns the directory's entries newline-joined, in the order
// the filesystem enumerates them.
func ListDirectory(ctx context.Context, args Arguments) (string, error) {
	paths, err := fsops.ListDir(args.String("path"), args.Bool("recursive"))
	if err != nil {
		return "", err
	}
	return strings.Join(paths, "\n"), nil
}
