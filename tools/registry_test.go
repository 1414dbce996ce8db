package tools_test

import (
	"reflect"
	"sort"
	"testing"

	"hostbridge/tools"
)

func TestRegistry_ToolCount(t *testing.T) {
	defs := tools.Registry()
	wantCount := 6 // read_file, write_file, list_directory, system_info, http_request, run_command
	if len(defs) != wantCount {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), wantCount)
	}
}

func TestRegistry_StableOrder(t *testing.T) {
	want := []string{"read_file", "write_file", "list_directory", "system_info", "http_request", "run_command"}
	for range 3 {
		defs := tools.Registry()
		got := make([]string, 0, len(defs))
		for _, d := range defs {
			got = append(got, d.Name)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("order: got %v want %v", got, want)
		}
	}
}

func TestRegistry_Descriptions(t *testing.T) {
	for _, d := range tools.Registry() {
		if d.Description == "" {
			t.Errorf("tool %q has empty description", d.Name)
		}
		if len(d.InputSchema.Raw) == 0 {
			t.Errorf("tool %q has empty schema", d.Name)
		}
	}
}

func TestRegistry_RequiredFields(t *testing.T) {
	want := map[string][]string{
		"read_file":      {"path"},
		"write_file":     {"path", "content"},
		"list_directory": {"path"},
		"system_info":    {},
		"http_request":   {"url"},
		"run_command":    {"command"},
	}

	for _, d := range tools.Registry() {
		wantReq, ok := want[d.Name]
		if !ok {
			t.Fatalf("unexpected tool in registry: %q", d.Name)
		}
		got := append([]string{}, d.InputSchema.Required...)
		sort.Strings(got)
		sort.Strings(wantReq)
		if len(got) == 0 && len(wantReq) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, wantReq) {
			t.Errorf("tool %q required: got %v want %v", d.Name, got, wantReq)
		}
	}
}
