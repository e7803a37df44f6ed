package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/liamg/sweep/scan"
	"github.com/liamg/sweep/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var timeoutMS int
var workers int = scan.DefaultWorkers
var portSelection string
var openOnly bool
var versionRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Per-port timeout in MS (default 1000, or 3000 for a single port)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", workers, fmt.Sprintf("Parallel workers to scan with (1-%d)", scan.MaxWorkers))
	rootCmd.PersistentFlags().BoolVarP(&openOnly, "open-only", "o", openOnly, "Omit output for ports which are not open")
	rootCmd.Flags().StringVarP(&portSelection, "ports", "p", portSelection, "Ports to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090")
}

var rootCmd = &cobra.Command{
	Use:   "sweep [target]",
	Short: "Sweep is a TCP connect port scanner",
	Long:  `A TCP connect port scanner for finding which ports of an IPv4 host accept connections.`,
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("sweep %s\n", v)
			return
		}

		if len(args) == 0 {
			fmt.Println("Please specify a target")
			os.Exit(1)
		}

		host, err := scan.ParseHost(args[0])
		exitOnError(err)

		ports, err := scan.ParsePortSelection(portSelection)
		exitOnError(err)

		fmt.Printf("\nScanning %s (%d ports)...\n", host, len(ports))
		runScan(host, ports, scan.WithServices())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// workerCount falls back to the default for counts outside 1..MaxWorkers.
func workerCount() int {
	if workers < 1 || workers > scan.MaxWorkers {
		log.Warnf("Worker count %d out of range 1-%d, using %d", workers, scan.MaxWorkers, scan.DefaultWorkers)
		return scan.DefaultWorkers
	}
	return workers
}

func probeTimeout(fallback time.Duration) time.Duration {
	if timeoutMS > 0 {
		return time.Millisecond * time.Duration(timeoutMS)
	}
	return fallback
}

func runScan(host scan.Host, ports scan.PortSet, opts ...scan.ReporterOption) {

	if openOnly {
		opts = append(opts, scan.OpenOnly())
	}
	reporter := scan.NewReporter(os.Stdout, opts...)

	var scanner scan.Scanner = scan.NewConnectScanner(
		scan.NewConnectProber(nil),
		reporter,
		probeTimeout(scan.BatchTimeout),
		workerCount(),
	)

	startTime := time.Now()
	log.Debugf("Scan started at %s", startTime.String())

	exitOnError(scanAndReport(scanner, reporter, host, ports))

	log.Debugf("Scan complete in %s", time.Since(startTime).String())
}

// scanAndReport writes the header, one line per port and the summary to reporter.
func scanAndReport(scanner scan.Scanner, reporter *scan.Reporter, host scan.Host, ports scan.PortSet) error {
	reporter.Header()
	summary, err := scanner.Scan(host, ports)
	if err != nil {
		return err
	}
	reporter.Summary(summary)
	return nil
}
