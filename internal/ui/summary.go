package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/netgen/internal/network"
)

// Summary renders the result of validating a context. When styled is false
// the output is plain text suitable for pipes and logs.
func Summary(source string, m *network.Manifest, err error, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	b.WriteString(render(titleStyle, fmt.Sprintf("netgen validate: %s", source)))
	b.WriteString("\n")

	if err != nil {
		b.WriteString(render(failedStyle, fmt.Sprintf("%s %v", crossMark, err)))
		b.WriteString("\n")
		if kind, ok := network.KindOf(err); ok {
			b.WriteString(render(dimStyle, fmt.Sprintf("     kind: %s", kind)))
			b.WriteString("\n")
		}
		return b.String()
	}

	netRes := m.Network()
	if netRes == nil {
		b.WriteString(render(failedStyle, crossMark+" empty manifest"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(render(okStyle, fmt.Sprintf("%s network %s", checkMark, netRes.Name)))
	b.WriteString("\n")

	subnets := m.Subnetworks()
	b.WriteString(render(sectionStyle, fmt.Sprintf("Subnetworks (%d)", len(subnets))))
	b.WriteString("\n")
	b.WriteString(render(dimStyle, fmt.Sprintf("  %-32s %-16s %s", "Name", "Region", "CIDR")))
	b.WriteString("\n")

	for _, r := range subnets {
		props, ok := r.Properties.(*network.SubnetworkProperties)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-32s %-16s %s\n", r.Name, props.Region, props.IPCidrRange))
	}

	return b.String()
}
