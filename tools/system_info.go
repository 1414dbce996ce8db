package tools

import (
	"context"
	"encoding/json"

	"hostbridge/internal/sysinfo"
)

type SystemInfoInput struct{}

var SystemInfoDefinition = ToolDefinition{
	Name:        "system_info",
	Description: "Report host platform, CPU, memory, uptime, load average and network interface details.",
	InputSchema: SystemInfoInputSchema,
	Handler:     SystemInfo,
}

var SystemInfoInputSchema = GenerateSchema[SystemInfoInput]()

// SystemInfo renders a host snapshot as pretty-printed JSON. Individual
// probes that fail leave their fields zeroed instead of failing the call.
func SystemInfo(ctx context.Context, args Arguments) (string, error) {
	snap := sysinfo.Collect(ctx)
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
