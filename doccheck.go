// Package doccheck provides a CLI toolkit for documentation source trees.
// It verifies that a tree contains every file a fixed catalog expects,
// prints a grouped coverage report, and manages the declarative build
// configuration consumed by the documentation generator.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, etree/, yaml/).
package doccheck
