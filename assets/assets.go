package assets

import "embed"

// DefaultConfigPath is the location of the bundled configuration inside FS.
const DefaultConfigPath = "urls.json"

//go:embed urls.json
var FS embed.FS
