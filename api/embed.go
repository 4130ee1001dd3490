// Package api holds the OpenAPI document of the HTTP surface.
package api

import _ "embed"

// Document is the OpenAPI 3 document served at /openapi.json and used to validate requests.
//
//go:embed openapi.json
var Document []byte
