package naming

import "fmt"

// Naming functions for generated resources.
// Names must stay stable across runs so the deployment engine can diff
// manifests against existing resources.

func Network(name string) string {
	return name
}

func Subnetwork(name, region string) string {
	return fmt.Sprintf("%s-%s", name, region)
}

// SelfLinkRef returns a reference to another resource's selfLink that the
// deployment engine resolves at apply time.
func SelfLinkRef(resource string) string {
	return fmt.Sprintf("$(ref.%s.selfLink)", resource)
}
