package cmd

import (
	"fmt"

	"github.com/liamg/sweep/scan"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commonCmd)
}

var commonCmd = &cobra.Command{
	Use:   "common [target]",
	Short: "Scan the most commonly used service ports",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		host, err := scan.ParseHost(args[0])
		exitOnError(err)

		fmt.Printf("\nScanning %s for common ports...\n", host)
		fmt.Printf("Scanning %d important ports...\n\n", len(scan.CommonPorts))
		runScan(host, scan.CommonPorts, scan.WithServices(), scan.CompletionMessage("Common ports scan complete!"))
	},
}
