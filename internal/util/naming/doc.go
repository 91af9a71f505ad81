// Package naming provides consistent naming functions for generated
// deployment resources.
//
// The network resource is named after the deployment environment and each
// subnetwork follows the pattern {name}-{region}, which is also the key used
// for duplicate detection. Cross-resource links use the deployment engine's
// $(ref.{resource}.selfLink) reference syntax.
package naming
