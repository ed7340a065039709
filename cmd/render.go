package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yitingyao/IP-Network-Calculator/internal/domain"
	"github.com/yitingyao/IP-Network-Calculator/internal/service"
)

var (
	re          = lipgloss.NewRenderer(os.Stdout)
	HeaderStyle = re.NewStyle().Bold(true).Align(lipgloss.Center)
	CellStyle   = re.NewStyle().Padding(0, 1)
	RowStyle    = CellStyle
	BorderStyle = lipgloss.NewStyle()
)

const notApplicable = "n/a"

// renderReport prints the subnet report as two tables: one row per
// address with its dotted-decimal and dotted-binary forms, followed by
// the subnetting statistics.
func renderReport(w io.Writer, r domain.Report, withBinary bool) error {
	addresses := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return HeaderStyle
			}
			return RowStyle
		})

	if withBinary {
		addresses.Headers("Field", "Address", "Binary")
	} else {
		addresses.Headers("Field", "Address")
	}

	addressRow(addresses, withBinary, "IP Address", r.Address, "")
	addressRow(addresses, withBinary, "Subnet Mask", r.SubnetMask, "= "+strconv.Itoa(r.PrefixBits))
	addressRow(addresses, withBinary, "Wildcard Mask", r.WildcardMask, "")
	addressRow(addresses, withBinary, "Network", r.Network, "/"+strconv.Itoa(r.PrefixBits)+" (Class "+r.Class.String()+")")
	addressRow(addresses, withBinary, "Broadcast", r.Broadcast, "")

	if r.HasHostRange {
		addressRow(addresses, withBinary, "First Host", r.FirstHost, "")
		addressRow(addresses, withBinary, "Last Host", r.LastHost, "")
	} else if withBinary {
		addresses.Row("Host Range", notApplicable, "")
	} else {
		addresses.Row("Host Range", notApplicable)
	}

	stats := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return HeaderStyle
			}
			return RowStyle
		}).
		Headers("Statistic", "Value").
		Row("Address Class", r.Class.String()).
		Row("Default Prefix Bits", strconv.Itoa(r.DefaultPrefixBits)).
		Row("Borrowed Bits", strconv.Itoa(r.BorrowedBits)).
		Row("Host Bits", strconv.Itoa(r.HostBits)).
		Row("Usable Hosts per Subnet", countOrNA(r.UsableHosts, r.HasHostRange)).
		Row("Total Subnets", countOrNA(r.TotalSubnets, r.BorrowedBits >= 0))

	_, err := fmt.Fprintln(w, addresses.String()+"\n"+stats.String())
	return err
}

func addressRow(t *table.Table, withBinary bool, field string, addr domain.Address, note string) {
	decimal := addr.String()
	if note != "" {
		decimal += " " + note
	}
	if withBinary {
		t.Row(field, decimal, addr.Binary())
	} else {
		t.Row(field, decimal)
	}
}

func countOrNA(n uint64, applicable bool) string {
	if !applicable {
		return notApplicable
	}
	return strconv.FormatUint(n, 10)
}

// renderMembership prints the result of a contains check.
func renderMembership(w io.Writer, result service.MembershipResult) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return HeaderStyle
			}
			return RowStyle
		}).
		Headers("Subnet", "Address", "Contains", "Usable Host").
		Row(result.Prefix.String(), result.Addr.String(),
			strconv.FormatBool(result.Contains), strconv.FormatBool(result.Usable))

	_, err := fmt.Fprintln(w, t)
	return err
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
