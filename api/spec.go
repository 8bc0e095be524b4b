// Package api embeds the OpenAPI document describing the JSON endpoints.
package api

import _ "embed"

// OpenAPISpec is the OpenAPI 3.1 document in YAML form.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
