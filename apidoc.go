// Package apidoc resolves loosely-specified API documentation identifiers
// against a pre-built offline index and provides ranked keyword search
// over the type catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, difflib/, prometheus/).
package apidoc
