package deployment

import (
	"github.com/imamik/netgen/internal/util/ptr"
)

// Subnetwork property keys as they appear in template properties.
const (
	KeyName        = "name"
	KeyRegion      = "region"
	KeyCIDR        = "cidr"
	KeyDescription = "description"
)

// RequiredSubnetworkKeys lists the keys every subnetwork entry must carry.
var RequiredSubnetworkKeys = []string{KeyName, KeyRegion, KeyCIDR}

// Context is the read-only input to resource generation.
type Context struct {
	Env        Environment `yaml:"env" mapstructure:"env"`
	Properties Properties  `yaml:"properties" mapstructure:"properties"`
}

// Environment describes the deployment the template is rendered for.
// Only Name takes part in generation; Project and Deployment are informational.
type Environment struct {
	Name       string `yaml:"name" mapstructure:"name"`
	Project    string `yaml:"project,omitempty" mapstructure:"project"`
	Deployment string `yaml:"deployment,omitempty" mapstructure:"deployment"`
}

// Properties holds the template properties.
type Properties struct {
	Subnetworks []SubnetworkSpec `yaml:"subnetworks" mapstructure:"subnetworks"`
}

// SubnetworkSpec is one entry of properties.subnetworks.
// A nil field means the key was absent or null; an empty string is present.
type SubnetworkSpec struct {
	Name        *string `yaml:"name,omitempty" mapstructure:"name"`
	Region      *string `yaml:"region,omitempty" mapstructure:"region"`
	CIDR        *string `yaml:"cidr,omitempty" mapstructure:"cidr"`
	Description *string `yaml:"description,omitempty" mapstructure:"description"`
}

// Missing returns the required keys absent from the spec, in declaration order.
func (s SubnetworkSpec) Missing() []string {
	var missing []string
	if s.Name == nil {
		missing = append(missing, KeyName)
	}
	if s.Region == nil {
		missing = append(missing, KeyRegion)
	}
	if s.CIDR == nil {
		missing = append(missing, KeyCIDR)
	}
	return missing
}

// Subnetwork builds a fully populated spec. An empty description is left unset.
func Subnetwork(name, region, cidr, description string) SubnetworkSpec {
	s := SubnetworkSpec{
		Name:   ptr.String(name),
		Region: ptr.String(region),
		CIDR:   ptr.String(cidr),
	}
	if description != "" {
		s.Description = ptr.String(description)
	}
	return s
}

// WithNetworkName returns a copy of the context with the environment name
// replaced. The subnetwork list is shared with the receiver.
func (c Context) WithNetworkName(name string) *Context {
	c.Env.Name = name
	return &c
}
