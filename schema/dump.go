package schema

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders s as a readable, recursive tree, used by
// cmd/versig-inspect to show a whole schema.
func Dump(s Schema) string {
	return dumpConfig.Sdump(s)
}
