// Package diagnostic collects findings produced while validating enum
// mappings. The mapping engine's Validate and the CLI's check command both
// report through Diagnostics.
package diagnostic
