package cmd

import (
	"fmt"
	"os"

	"github.com/liamg/sweep/scan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portCmd)
}

var portCmd = &cobra.Command{
	Use:   "port [target] [port]",
	Short: "Check whether a single port is open",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		host, err := scan.ParseHost(args[0])
		exitOnError(err)

		port, err := scan.ParsePort(args[1])
		exitOnError(err)

		fmt.Printf("\nScanning %s...\n", host.Address(port))

		state := scan.NewConnectProber(nil).Probe(host, port, probeTimeout(scan.SingleTimeout))
		scan.NewReporter(os.Stdout).Single(port, state)
	},
}
