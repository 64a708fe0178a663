// Package common holds small helpers shared by the internal packages.
package common

import "path"

// PkgAlias returns the last element of an import path, or "" for "".
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// ShortName qualifies name with the package alias: "store.Status".
// Types without a package (builtins) keep their bare name.
func ShortName(pkgPath, name string) string {
	if alias := PkgAlias(pkgPath); alias != "" {
		return alias + "." + name
	}

	return name
}

// PairName renders a conversion pair for diagnostics: "store.Order -> warehouse.OrderDto".
func PairName(source, target string) string {
	return source + " -> " + target
}
