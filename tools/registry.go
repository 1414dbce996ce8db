package tools

// Registry returns the fixed tool catalog in its stable listing order
func Registry() []ToolDefinition {
	return []ToolDefinition{
		ReadFileDefinition,
		WriteFileDefinition,
		ListDirectoryDefinition,
		SystemInfoDefinition,
		HTTPRequestDefinition,
		RunCommandDefinition,
	}
}
