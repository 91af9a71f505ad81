// Package manifest encodes generated resources into the document format the
// deployment engine consumes.
package manifest
