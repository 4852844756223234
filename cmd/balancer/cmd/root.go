// Package cmd implements the balancer CLI's cobra command tree.
package cmd

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var rootCmd = &cobra.Command{
	Use:   "balancer",
	Short: "Run the cluster load balancer core against a cluster snapshot",
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		klog.ErrorS(err, "balancer: command failed")
		os.Exit(1)
	}
}

func init() {
	fs := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(fs)
	rootCmd.PersistentFlags().AddGoFlagSet(fs)
	rootCmd.AddCommand(balanceCmd)
}
