// Package tbfinspect formats a decoded TBF object tree for display,
// shared by cmd/tbfdump's listing/JSON output and cmd/tbfview's
// interactive tree browser so the two tools agree on field labels,
// type names, and value formatting.
package tbfinspect
