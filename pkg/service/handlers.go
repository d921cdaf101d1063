package service

import (
	"context"

	"github.com/gridshot/gridshot/pkg/grid"
)

// PingHandler answers liveness probes.
func PingHandler(_ context.Context, _ map[string]any) (map[string]any, error) {
	return map[string]any{"message": "pong"}, nil
}

// GridHandler adapts the grid builder to the command protocol. Args carry an
// optional "paths" list of strings and an optional "data" settings object;
// both are passed through loosely and coerced inside the builder, so a
// malformed value degrades to a default instead of failing the request.
//
// The builder's status string is always returned as the response message.
// Only infrastructure errors (directory creation, encoding) become
// internal_error responses.
func GridHandler(builder *grid.Builder) Handler {
	return func(_ context.Context, args map[string]any) (map[string]any, error) {
		var paths []string
		if raw, ok := args["paths"].([]any); ok {
			for _, v := range raw {
				if p, ok := v.(string); ok {
					paths = append(paths, p)
				}
			}
		}

		settings, _ := args["data"].(map[string]any)

		status, err := builder.Build(paths, settings)
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": status}, nil
	}
}
