package tools

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
)

type RunCommandInput struct {
	Command string `json:"command" jsonschema_description:"Shell command to execute."`
	Cwd     string `json:"cwd,omitempty" jsonschema_description:"Working directory (defaults to the server's own)."`
}

var RunCommandDefinition = ToolDefinition{
	Name:        "run_command",
	Description: "Execute a shell command and return its stdout; on failure the error and stderr are returned as the result text.",
	InputSchema: RunCommandInputSchema,
	Handler:     RunCommand,
}

var RunCommandInputSchema = GenerateSchema[RunCommandInput]()

// RunCommand executes the command through the platform shell.
//
// Failure policy differs from every other tool on purpose: a spawn failure or
// non-zero exit is reported as a successful result whose text carries the
// error and captured stderr. Callers of this tool always receive command
// output as ordinary text, never a protocol error.
func RunCommand(ctx context.Context, args Arguments) (string, error) {
	shell, flag := "/bin/sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}

	cmd := exec.CommandContext(ctx, shell, flag, args.String("command"))
	if cwd := args.String("cwd"); cwd != "" {
		cmd.Dir = cwd
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "Error: " + err.Error() + "\n" + stderr.String(), nil
	}
	return stdout.String(), nil
}
