// Package mapping provides the YAML schema, parsing and validation of check
// files: the list of enum pairs the CLI verifies ahead of mapping.
//
// # Schema Overview
//
//	version: "1"
//	packages:
//	  - enum-mapper/store
//	  - enum-mapper/warehouse
//	pairs:
//	  - source: store.Status
//	    target: warehouse.StatusForDto
//	  - source: store.Status
//	    target: warehouse.LegacyStatus
//	    mode: strict            # default | strict | name
//	  - source: store.Status
//	    target: warehouse.ReviewStatus
//	    ignore: [Complete]      # source members allowed to fail
//
// Type references are resolved by analyze.Graph.Lookup, so both full import
// paths and short "pkg.Type" forms work.
package mapping
