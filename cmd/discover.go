package cmd

import (
	"fmt"
	"time"

	"github.com/liamg/sweep/scan"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var upOnly bool

func init() {
	discoverCmd.Flags().BoolVarP(&upOnly, "up-only", "u", upOnly, "Omit output for hosts which are not up")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover [target]",
	Short: "Discover which hosts of an address or CIDR block are up",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		targets, err := scan.NewTargets(args[0])
		exitOnError(err)

		startTime := time.Now()
		fmt.Printf("\nStarting discovery at %s\n\n", startTime.String())

		up, total := 0, 0
		scanner := scan.NewDeviceScanner(nil, probeTimeout(scan.BatchTimeout), workerCount())
		err = scanner.Discover(targets, func(device scan.Device) {
			total++
			if device.IsUp() {
				up++
			}
			if !upOnly || device.IsUp() {
				fmt.Println(device.String())
			}
		})
		exitOnError(err)

		log.Debugf("%d of %d hosts up", up, total)
		fmt.Printf("Discovery complete in %s.\n", time.Since(startTime).String())
	},
}
