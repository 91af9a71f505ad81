// Package network renders the network template: one network resource
// followed by one subnetwork resource per entry in the deployment
// properties.
//
// Generation is a single validation and assembly pass over the subnetwork
// list in input order. Any invalid entry aborts the whole call and no
// resources are returned. Errors are [*ValidationError] values that unwrap
// to one sentinel per failure kind, so callers can branch with [errors.Is]
// or [KindOf] instead of matching messages.
package network
