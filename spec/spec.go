// Package spec embeds the OpenAPI description of the HTTP API, served at
// /openapi.yaml so clients always see the document for the running build.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
