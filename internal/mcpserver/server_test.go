package mcpserver_test

import (
	"testing"

	"github.com/rs/zerolog"

	"hostbridge/internal/dispatch"
	"hostbridge/internal/mcpserver"
	"hostbridge/tools"
)

func TestNew_BuildsServerFromCatalog(t *testing.T) {
	d := dispatch.New(tools.Registry(), zerolog.Nop())
	s := mcpserver.New("hostbridge-test", "0.0.0", d)
	if s == nil {
		t.Fatal("expected server instance")
	}
}
