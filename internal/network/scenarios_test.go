package network_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/netgen/internal/deployment"
	"github.com/imamik/netgen/internal/network"
)

var _ = Describe("Generate", func() {
	var ctx *deployment.Context

	BeforeEach(func() {
		ctx = &deployment.Context{
			Env: deployment.Environment{Name: "prod-net"},
			Properties: deployment.Properties{
				Subnetworks: []deployment.SubnetworkSpec{
					deployment.Subnetwork("web", "us-central1", "10.0.0.0/24", ""),
					deployment.Subnetwork("db", "us-east1", "10.0.1.0/24", ""),
				},
			},
		}
	})

	Context("with a network and two subnetworks", func() {
		It("emits the network first and one resource per subnetwork", func() {
			m, err := network.Generate(ctx)
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, 0, len(m.Resources))
			for _, r := range m.Resources {
				names = append(names, r.Name)
			}
			Expect(names).To(Equal([]string{"prod-net", "web-us-central1", "db-us-east1"}))
		})

		It("links every subnetwork back to the network", func() {
			m, err := network.Generate(ctx)
			Expect(err).NotTo(HaveOccurred())

			for _, r := range m.Subnetworks() {
				Expect(r.Metadata).NotTo(BeNil())
				Expect(r.Metadata.DependsOn).To(Equal([]string{"prod-net"}))

				props, ok := r.Properties.(*network.SubnetworkProperties)
				Expect(ok).To(BeTrue())
				Expect(props.Network).To(Equal("$(ref.prod-net.selfLink)"))
			}
		})
	})

	Context("with an empty subnetwork list", func() {
		It("fails with MissingSubnetworks and returns no resources", func() {
			ctx.Properties.Subnetworks = nil

			m, err := network.Generate(ctx)
			Expect(err).To(MatchError(network.ErrMissingSubnetworks))
			Expect(m).To(BeNil())
		})
	})

	Context("with the same name and region twice", func() {
		It("accepts the first and rejects the second", func() {
			ctx.Properties.Subnetworks = []deployment.SubnetworkSpec{
				deployment.Subnetwork("web", "us-central1", "10.0.0.0/24", ""),
				deployment.Subnetwork("web", "us-central1", "10.0.5.0/24", ""),
			}

			m, err := network.Generate(ctx)
			Expect(err).To(MatchError(network.ErrDuplicateSubnetworkName))
			Expect(m).To(BeNil())

			var verr *network.ValidationError
			Expect(err).To(BeAssignableToTypeOf(verr))
			Expect(err.(*network.ValidationError).Index).To(Equal(1))
			Expect(err.(*network.ValidationError).Subnetwork).To(Equal("web-us-central1"))
		})
	})

	DescribeTable("CIDR handling",
		func(cidr string, accepted bool) {
			ctx.Properties.Subnetworks = []deployment.SubnetworkSpec{
				deployment.Subnetwork("web", "us-central1", cidr, ""),
			}

			_, err := network.Generate(ctx)
			if accepted {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(network.ErrInvalidCIDR))
			}
		},
		Entry("ordinary prefix", "10.0.0.0/24", true),
		Entry("out of range but well formed", "300.300.300.300/40", true),
		Entry("three octets", "10.0.0/24", false),
		Entry("missing prefix", "10.0.0.0", false),
		Entry("three digit prefix", "10.0.0.0/100", false),
	)
})
