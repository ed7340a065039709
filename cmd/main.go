package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yitingyao/IP-Network-Calculator/internal/logger"
	"github.com/yitingyao/IP-Network-Calculator/internal/service"
)

var (
	logLevel   string
	noColor    bool
	jsonOutput bool
	withBinary bool
	version    = "dev" // set at build time via -ldflags
)

func main() {
	log := logger.New(logger.Options{Level: logLevel})
	logger.SetGlobalLogger(log)

	rootCmd := &cobra.Command{
		Use:           "ipcalc",
		Short:         "IPv4 subnet calculator for CIDR notation",
		Long:          `Computes subnet mask, wildcard mask, network and broadcast addresses, host range, address class and subnetting statistics from an address in CIDR notation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(logger.Options{Level: logLevel, NoColor: noColor})
			logger.SetGlobalLogger(log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	calcCmd := &cobra.Command{
		Use:   "calc [cidr]",
		Short: "Calculate subnet parameters for an address in CIDR notation",
		Long:  `Derives the subnet mask, wildcard mask, network and broadcast addresses, usable host range, address class and subnetting statistics. Reads one line from stdin when no argument is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCalc,
	}
	calcCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	calcCmd.Flags().BoolVarP(&withBinary, "binary", "b", true, "Include dotted-binary column")

	containsCmd := &cobra.Command{
		Use:   "contains <cidr> <ip>",
		Short: "Check whether an address belongs to a subnet",
		Args:  cobra.ExactArgs(2),
		RunE:  runContains,
	}
	containsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")

	rootCmd.AddCommand(calcCmd, containsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	log := logger.Global()

	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		line, err := readLine()
		if err != nil {
			return err
		}
		input = strings.TrimSpace(line)
	}

	calc := service.NewCalculator(log.Logger)
	report, err := calc.Calculate(input)
	if err != nil {
		return err
	}

	if jsonOutput {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	return renderReport(cmd.OutOrStdout(), report, withBinary)
}

func runContains(cmd *cobra.Command, args []string) error {
	log := logger.Global()

	membership := service.NewMembership(log.Logger)
	result, err := membership.Check(args[0], args[1])
	if err != nil {
		return err
	}

	if jsonOutput {
		return renderJSON(cmd.OutOrStdout(), result)
	}
	return renderMembership(cmd.OutOrStdout(), result)
}

// readLine prompts on stderr and reads a single line from stdin.
func readLine() (string, error) {
	fmt.Fprint(os.Stderr, "Enter an IP address in CIDR notation: \n> ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("no input provided")
	}
	return scanner.Text(), nil
}
