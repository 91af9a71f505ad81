package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind names a class of validation failure.
type ErrorKind string

// Validation failure kinds.
const (
	KindMissingNetworkName       ErrorKind = "MissingNetworkName"
	KindMissingSubnetworks       ErrorKind = "MissingSubnetworks"
	KindIncompleteSubnetworkSpec ErrorKind = "IncompleteSubnetworkSpec"
	KindInvalidCIDR              ErrorKind = "InvalidCidr"
	KindDuplicateSubnetworkName  ErrorKind = "DuplicateSubnetworkName"
)

// Sentinel errors, one per kind. A *ValidationError unwraps to exactly one of them.
var (
	ErrMissingNetworkName       = errors.New("network name cannot be empty")
	ErrMissingSubnetworks       = errors.New("no subnetworks provided in the configuration")
	ErrIncompleteSubnetworkSpec = errors.New("subnetwork missing 'name', 'region', or 'cidr'")
	ErrInvalidCIDR              = errors.New("invalid CIDR format for subnetwork")
	ErrDuplicateSubnetworkName  = errors.New("duplicate subnetwork name detected")
)

var sentinels = map[ErrorKind]error{
	KindMissingNetworkName:       ErrMissingNetworkName,
	KindMissingSubnetworks:       ErrMissingSubnetworks,
	KindIncompleteSubnetworkSpec: ErrIncompleteSubnetworkSpec,
	KindInvalidCIDR:              ErrInvalidCIDR,
	KindDuplicateSubnetworkName:  ErrDuplicateSubnetworkName,
}

// ValidationError describes why a context was rejected.
// Index is the position of the offending subnetwork entry, or -1 when the
// failure is not tied to a single entry.
type ValidationError struct {
	Kind ErrorKind
	// Index of the subnetwork entry in properties.subnetworks.
	Index int
	// Subnetwork is the entry's name, or its composite name for duplicates.
	Subnetwork string
	// Value is the rejected CIDR for KindInvalidCIDR.
	Value string
	// Missing lists absent keys for KindIncompleteSubnetworkSpec.
	Missing []string
}

func (e *ValidationError) Error() string {
	base := e.Unwrap()
	switch e.Kind {
	case KindIncompleteSubnetworkSpec:
		return fmt.Sprintf("subnetwork %d: %v (missing: %s)", e.Index, base, strings.Join(e.Missing, ", "))
	case KindInvalidCIDR:
		return fmt.Sprintf("%v: %s (got %q)", base, e.Subnetwork, e.Value)
	case KindDuplicateSubnetworkName:
		return fmt.Sprintf("%v: %s", base, e.Subnetwork)
	default:
		return base.Error()
	}
}

// Unwrap returns the sentinel error for the kind.
func (e *ValidationError) Unwrap() error {
	if err, ok := sentinels[e.Kind]; ok {
		return err
	}
	return fmt.Errorf("unknown validation failure %q", e.Kind)
}

// KindOf extracts the failure kind from err.
func KindOf(err error) (ErrorKind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}

func newError(kind ErrorKind, index int) *ValidationError {
	return &ValidationError{Kind: kind, Index: index}
}
