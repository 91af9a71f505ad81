package network

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/netgen/internal/deployment"
	"github.com/imamik/netgen/internal/util/naming"
)

// Recorder receives the outcome of each generation.
type Recorder interface {
	Generated(resources int)
	Failed(kind ErrorKind)
}

type nopRecorder struct{}

func (nopRecorder) Generated(int) {}
func (nopRecorder) Failed(ErrorKind) {}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger failures are reported to.
func WithLogger(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithStrictCIDR rejects CIDRs whose octets or prefix length are out of range.
func WithStrictCIDR() Option {
	return func(g *Generator) {
		g.validCIDR = IsStrictCIDR
	}
}

// Generator renders network manifests. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	log       logr.Logger
	recorder  Recorder
	validCIDR func(string) bool
}

// NewGenerator creates a generator. Without options it logs nowhere and
// uses the syntactic CIDR check.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:       logr.Discard(),
		recorder:  nopRecorder{},
		validCIDR: IsValidCIDR,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the manifest for ctx with a default generator.
func Generate(ctx *deployment.Context) (*Manifest, error) {
	return NewGenerator().Generate(ctx)
}

// Generate validates ctx and builds the network resource followed by one
// subnetwork resource per entry, in input order. On any validation failure
// it returns a *ValidationError and a nil manifest.
func (g *Generator) Generate(ctx *deployment.Context) (*Manifest, error) {
	m, err := g.generate(ctx)
	if err != nil {
		if kind, ok := KindOf(err); ok {
			g.recorder.Failed(kind)
		}
		return nil, err
	}
	g.recorder.Generated(len(m.Resources))
	return m, nil
}

func (g *Generator) generate(ctx *deployment.Context) (*Manifest, error) {
	if ctx == nil {
		ctx = &deployment.Context{}
	}

	networkName := naming.Network(ctx.Env.Name)
	if networkName == "" {
		g.log.Error(ErrMissingNetworkName, "Network name not provided")
		return nil, newError(KindMissingNetworkName, -1)
	}

	log := g.log.WithValues("network", networkName)

	resources := []Resource{{
		Name: networkName,
		Type: TypeNetwork,
		Properties: &NetworkProperties{
			Name:                  networkName,
			AutoCreateSubnetworks: false,
		},
	}}

	specs := ctx.Properties.Subnetworks
	if len(specs) == 0 {
		log.Error(ErrMissingSubnetworks, "No subnetworks provided")
		return nil, newError(KindMissingSubnetworks, -1)
	}

	networkRef := naming.SelfLinkRef(networkName)
	seen := make(map[string]struct{}, len(specs))

	for i, spec := range specs {
		if missing := spec.Missing(); len(missing) > 0 {
			err := newError(KindIncompleteSubnetworkSpec, i)
			err.Missing = missing
			log.Error(err, "Missing required subnetwork properties", "index", i, "spec", describeSpec(spec))
			return nil, err
		}

		name, region, cidr := *spec.Name, *spec.Region, *spec.CIDR

		if !g.validCIDR(cidr) {
			err := newError(KindInvalidCIDR, i)
			err.Subnetwork = name
			err.Value = cidr
			log.Error(err, "Invalid CIDR format for subnetwork", "subnetwork", name, "cidr", cidr)
			return nil, err
		}

		subnetName := naming.Subnetwork(name, region)
		if _, dup := seen[subnetName]; dup {
			err := newError(KindDuplicateSubnetworkName, i)
			err.Subnetwork = subnetName
			log.Error(err, "Duplicate subnetwork name detected", "subnetwork", subnetName)
			return nil, err
		}
		seen[subnetName] = struct{}{}

		description := fmt.Sprintf("Subnetwork of %s in %s", networkName, region)
		if spec.Description != nil && *spec.Description != "" {
			description = *spec.Description
		}

		resources = append(resources, Resource{
			Name: subnetName,
			Type: TypeSubnetwork,
			Properties: &SubnetworkProperties{
				Name:        subnetName,
				Description: description,
				IPCidrRange: cidr,
				Region:      region,
				Network:     networkRef,
			},
			Metadata: &Metadata{
				DependsOn: []string{networkName},
			},
		})
	}

	log.V(1).Info("Generated network resources", "subnetworks", len(resources)-1)

	return &Manifest{Resources: resources}, nil
}

// describeSpec renders the keys present in a spec for diagnostics.
func describeSpec(s deployment.SubnetworkSpec) map[string]string {
	out := make(map[string]string, 4)
	for key, val := range map[string]*string{
		deployment.KeyName:        s.Name,
		deployment.KeyRegion:      s.Region,
		deployment.KeyCIDR:        s.CIDR,
		deployment.KeyDescription: s.Description,
	} {
		if val != nil {
			out[key] = *val
		}
	}
	return out
}
