package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hostbridge/internal/telemetry"
	"hostbridge/tools"
)

// Content is one element of a dispatch result. Only text content is produced.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform success envelope. A successful dispatch carries
// exactly one text content element.
type Result struct {
	Content []Content `json:"content"`
}

// Dispatcher routes named tool calls to their handlers. The catalog is fixed
// at construction and never mutated, so concurrent calls need no locking;
// each dispatch is stateless and independent.
type Dispatcher struct {
	defs  []tools.ToolDefinition
	index map[string]int
	log   zerolog.Logger
}

func New(defs []tools.ToolDefinition, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		defs:  defs,
		index: make(map[string]int, len(defs)),
		log:   logger,
	}
	for i, def := range defs {
		d.index[def.Name] = i
	}
	return d
}

// ListTools returns the catalog in registration order. Every call observes
// identical output.
func (d *Dispatcher) ListTools() []tools.ToolDefinition {
	out := make([]tools.ToolDefinition, len(d.defs))
	copy(out, d.defs)
	return out
}

// CallTool validates args against the named tool's schema, invokes the bound
// handler and wraps the outcome. Exactly one of result and error is non-nil.
//
// Required arguments must be present; primitive kinds are not enforced here
// (see tools.Arguments for the coercion policy).
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*Result, error) {
	i, ok := d.index[name]
	if !ok {
		d.log.Warn().Str("tool", name).Msg("call for unknown tool")
		return nil, notFound(name)
	}
	def := d.defs[i]

	for _, field := range def.InputSchema.Required {
		if v, present := args[field]; !present || v == nil {
			return nil, invalidArguments(name, field)
		}
	}

	callID, ok := telemetry.CallIDFromContext(ctx)
	if !ok {
		callID = uuid.NewString()
		ctx = telemetry.WithCallID(ctx, callID)
	}

	start := time.Now()
	text, err := def.Handler(ctx, tools.Arguments(args))
	dur := time.Since(start)

	// Generic error marker only; detailed messages stay out of the event
	// stream and travel in the returned error instead.
	fields := map[string]any{
		"call_id":     callID,
		"tool_name":   name,
		"duration_ms": dur.Milliseconds(),
		"arg_count":   len(args),
		"output_size": len(text),
	}
	if err != nil {
		fields["error"] = "handler error"
	} else {
		fields["error"] = nil
	}
	telemetry.Emit("tool_call", fields)

	if err != nil {
		d.log.Error().Str("tool", name).Str("call_id", callID).Err(err).Msg("tool handler failed")
		return nil, handlerFailure(name, err)
	}

	d.log.Debug().Str("tool", name).Str("call_id", callID).Dur("duration", dur).Msg("tool call completed")
	return &Result{Content: []Content{{Type: "text", Text: text}}}, nil
}
