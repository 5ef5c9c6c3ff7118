// Package data embeds default configuration shipped with the binary.
package data

import _ "embed"

//go:embed defaults.yaml
var DefaultConfig []byte
