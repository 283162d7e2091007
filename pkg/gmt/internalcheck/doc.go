// Package internalcheck holds source policy tests for the GMT wrapper.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and inspect their syntax. They keep the native boundary in one place and
// keep library packages from writing to stdout. The package has no API.
package internalcheck
