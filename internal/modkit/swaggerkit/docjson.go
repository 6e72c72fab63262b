//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"voicejournal/internal/platform/config"

	docs "voicejournal/internal/services/api/docs"
)

// SpecMutator adjusts the parsed swagger document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can feed invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register queues a mutator, normally from a module init
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeOAS3(spec, "/api/v1")
		applyTitleSuffix(spec)
		ensureErrorSchema(spec)
		injectDefaultError(spec)
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeOAS3 forces the document onto 3.0.3 and guarantees a servers
// array. The UI cannot render 3.1 or swagger 2 documents
func normalizeOAS3(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	v, ok := spec["openapi"].(string)
	if !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func applyTitleSuffix(spec map[string]any) {
	suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	if suffix == "" {
		return
	}
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	if title, ok := info["title"].(string); ok {
		info["title"] = title + " " + suffix
	}
}

func childMap(parent map[string]any, key string) map[string]any {
	m, ok := parent[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		parent[key] = m
	}
	return m
}

// ensureErrorSchema defines the response envelope model once so operation
// level error responses can reference it
func ensureErrorSchema(spec map[string]any) {
	schemas := childMap(childMap(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// injectDefaultError gives every operation a 500 response unless it
// already declares one
func injectDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": 500,
					"status":      "Internal Server Error",
					"code":        1,
					"error":       "panic recovered",
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := childMap(op, "responses")
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
