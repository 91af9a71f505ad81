package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/netgen/cmd/netgen/handlers"
	"github.com/imamik/netgen/internal/config"
)

// Generate returns the command that renders a network manifest.
//
// Optional flags:
//
//	--context, -c: Path to the deployment context (default: auto-detect netgen.yaml)
//	--output, -o: Write the manifest to a file instead of stdout
//	--format: Manifest encoding, yaml or json
//	--name: Override env.name from the context
//	--strict-cidr: Also reject out-of-range octets and prefix lengths
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the network and subnetwork resources",
		Long: `Render the network manifest for a deployment context.

The context file provides the network name (env.name) and the list of
subnetworks (properties.subnetworks). The output is a resources document
with the network first, followed by one subnetwork per entry in input
order. Any invalid entry aborts generation and nothing is written.

Examples:
  # Render netgen.yaml from the current directory to stdout
  netgen generate

  # Render a specific context as JSON into a file
  netgen generate -c prod.yaml --format json -o prod.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return handlers.Generate(opts, s)
		},
	}

	cmd.Flags().StringVarP(&opts.ContextPath, "context", "c", "", "Path to deployment context file (default: netgen.yaml)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write manifest to file instead of stdout")
	cmd.Flags().StringVar(&opts.NetworkName, "name", "", "Override the network name from the context")
	cmd.Flags().String(config.KeyFormat, "yaml", "Output format (yaml, json)")
	cmd.Flags().Bool(config.KeyStrictCIDR, false, "Reject CIDRs with out-of-range octets or prefix lengths")

	return cmd
}
