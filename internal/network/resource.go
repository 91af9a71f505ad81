package network

// Kind is the resource kind of a descriptor.
type Kind string

// Resource kinds.
const (
	KindNetwork    Kind = "NETWORK"
	KindSubnetwork Kind = "SUBNETWORK"
)

// ResourceType is the deployment engine type string of a resource.
type ResourceType string

// Deployment engine types for the two resource kinds.
const (
	TypeNetwork    ResourceType = "compute.v1.network"
	TypeSubnetwork ResourceType = "compute.v1.subnetwork"
)

// Kind maps the engine type back to its resource kind.
func (t ResourceType) Kind() Kind {
	switch t {
	case TypeNetwork:
		return KindNetwork
	case TypeSubnetwork:
		return KindSubnetwork
	default:
		return ""
	}
}

// Manifest is the top-level document returned to the deployment engine.
type Manifest struct {
	Resources []Resource `json:"resources"`
}

// Resource is a single resource descriptor.
// Properties holds *NetworkProperties or *SubnetworkProperties depending on Type.
type Resource struct {
	Name       string       `json:"name"`
	Type       ResourceType `json:"type"`
	Properties any          `json:"properties"`
	Metadata   *Metadata    `json:"metadata,omitempty"`
}

// NetworkProperties are the properties of a network resource.
type NetworkProperties struct {
	Name                  string `json:"name"`
	AutoCreateSubnetworks bool   `json:"autoCreateSubnetworks"`
}

// SubnetworkProperties are the properties of a subnetwork resource.
type SubnetworkProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IPCidrRange string `json:"ipCidrRange"`
	Region      string `json:"region"`
	Network     string `json:"network"`
}

// Metadata carries deployment ordering hints.
type Metadata struct {
	DependsOn []string `json:"dependsOn"`
}

// Network returns the network resource, which is always the first element.
func (m *Manifest) Network() *Resource {
	if m == nil || len(m.Resources) == 0 {
		return nil
	}
	return &m.Resources[0]
}

// Subnetworks returns the subnetwork resources in generation order.
func (m *Manifest) Subnetworks() []Resource {
	if m == nil || len(m.Resources) < 2 {
		return nil
	}
	return m.Resources[1:]
}
