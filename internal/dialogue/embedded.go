package dialogue

import "embed"

//go:embed content/*.yaml
var content embed.FS

// Embedded returns the scenes compiled into the binary.
func Embedded() FSSource {
	return FSSource{FS: content, Dir: "content"}
}
