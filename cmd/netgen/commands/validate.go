package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/netgen/cmd/netgen/handlers"
	"github.com/imamik/netgen/internal/config"
)

// Validate returns the command that checks a deployment context.
func Validate() *cobra.Command {
	var contextPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a deployment context without rendering it",
		Long: `Check a deployment context and summarize the resources it would produce.

Exits non-zero when the context is rejected.

Examples:
  netgen validate -c prod.yaml
  netgen validate --strict-cidr`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return handlers.Validate(contextPath, s)
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "Path to deployment context file (default: netgen.yaml)")
	cmd.Flags().Bool(config.KeyStrictCIDR, false, "Reject CIDRs with out-of-range octets or prefix lengths")

	return cmd
}
