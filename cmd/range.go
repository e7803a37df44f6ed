package cmd

import (
	"fmt"

	"github.com/liamg/sweep/scan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rangeCmd)
}

var rangeCmd = &cobra.Command{
	Use:   "range [target] [start] [end]",
	Short: "Scan an inclusive range of ports",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		host, err := scan.ParseHost(args[0])
		exitOnError(err)

		start, err := scan.ParsePort(args[1])
		exitOnError(err)
		end, err := scan.ParsePort(args[2])
		exitOnError(err)

		ports, err := scan.NewPortRange(start, end)
		exitOnError(err)

		fmt.Printf("\nScanning %s ports %d-%d...\n", host, start, end)
		runScan(host, ports)
	},
}
