package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeConversionFailed   = "E001" // an enum member cannot be converted
	CodeResolverType       = "E002" // resolver result type does not fit the destination member
	CodeUnknownMember      = "E003" // configuration names a member that does not exist
	CodeUnregisteredEnum   = "E004" // an enum type has no descriptor
	CodeIncompatibleMember = "E005" // source and destination member types cannot be mapped
	CodeUnmappedMember     = "W001" // destination member has no source
	CodeValueMatch         = "W002" // member converts only by integer value
	CodeNormalizedMember   = "I001" // source member found by normalized name
	CodeCustomResolver     = "I002" // member uses a custom resolver
	CodeIdentityConversion = "I003" // enum type is shared, values pass through
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code is a unique identifier for this kind of finding.
	Code    string
	Message string
	// Pair names the type pair, e.g. "store.Order -> warehouse.OrderDto".
	Pair string
	// Member names the destination member or enum member, if any.
	Member      string
	Suggestions []string
}

// String returns "[pair] member: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Pair != "" {
		b.WriteString("[" + d.Pair + "] ")
	}
	if d.Member != "" {
		b.WriteString(d.Member + ": ")
	}
	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}
	b.WriteString(d.Message)
	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}

// Diagnostics holds findings grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add records d under its severity.
func (ds *Diagnostics) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		ds.Errors = append(ds.Errors, d)
	case SeverityWarning:
		ds.Warnings = append(ds.Warnings, d)
	default:
		ds.Infos = append(ds.Infos, d)
	}
}

// AddError adds an error diagnostic.
func (ds *Diagnostics) AddError(code, message, pair, member string, suggestions ...string) {
	ds.Add(Diagnostic{
		Severity: SeverityError, Code: code, Message: message,
		Pair: pair, Member: member, Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (ds *Diagnostics) AddWarning(code, message, pair, member string) {
	ds.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Pair: pair, Member: member})
}

// AddInfo adds an info diagnostic.
func (ds *Diagnostics) AddInfo(code, message, pair, member string) {
	ds.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Pair: pair, Member: member})
}

// Merge appends every finding of other.
func (ds *Diagnostics) Merge(other Diagnostics) {
	ds.Errors = append(ds.Errors, other.Errors...)
	ds.Warnings = append(ds.Warnings, other.Warnings...)
	ds.Infos = append(ds.Infos, other.Infos...)
}

// HasErrors returns true if there are any error diagnostics.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// All returns every finding, errors first.
func (ds *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(ds.Errors)+len(ds.Warnings)+len(ds.Infos))
	all = append(all, ds.Errors...)
	all = append(all, ds.Warnings...)

	return append(all, ds.Infos...)
}

// Codes returns the codes of every finding, errors first.
func (ds *Diagnostics) Codes() []string {
	var codes []string
	for _, d := range ds.All() {
		codes = append(codes, d.Code)
	}

	return codes
}

// Err joins the error findings into one error, or returns nil.
func (ds *Diagnostics) Err() error {
	if !ds.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(ds.Errors))
	for _, d := range ds.Errors {
		errs = append(errs, errors.New(d.String()))
	}

	return errors.Join(errs...)
}
