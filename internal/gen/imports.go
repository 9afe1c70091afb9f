package gen

import (
	"fmt"

	"numcast/internal/common"
)

// CastPkg is the import path generated statements refer to as cast.
const CastPkg = "numcast/cast"

// Import is a single import spec.
type Import struct {
	Alias string
	Path  string
}

func (i Import) String() string {
	if i.Alias != "" {
		return fmt.Sprintf("%s %q", i.Alias, i.Path)
	}

	return fmt.Sprintf("%q", i.Path)
}

// Imports maps import paths of generated statements to import specs. The
// cast package is imported from castPkg, aliased to cast when the last
// element of castPkg differs.
func Imports(paths []string, castPkg string) []Import {
	if castPkg == "" {
		castPkg = CastPkg
	}

	res := make([]Import, 0, len(paths))
	for _, p := range paths {
		if p != CastPkg {
			res = append(res, Import{Path: p})
			continue
		}

		imp := Import{Path: castPkg}
		if common.PkgAlias(castPkg) != "cast" {
			imp.Alias = "cast"
		}

		res = append(res, imp)
	}

	return res
}
