package introspection

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a human-readable dump of the decoded document to w.
// Intended for --debug output only.
func Dump(w io.Writer, doc *Document) {
	dumpConfig.Fdump(w, doc)
}
