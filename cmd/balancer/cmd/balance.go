package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/search"
)

var (
	configPath  string
	snapshotPath string
	seed        uint64
	dryRun      bool
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Run one balance invocation against a cluster snapshot",
	RunE:  runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&configPath, "config", "", "path to a balancer config file (YAML); defaults applied when empty")
	balanceCmd.Flags().StringVar(&snapshotPath, "cluster", "", "path to a cluster snapshot file (YAML/JSON, required)")
	balanceCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for the search loop")
	balanceCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without any further action (the core never mutates external state itself)")
	_ = balanceCmd.MarkFlagRequired("cluster")
}

func runBalance(cobraCmd *cobra.Command, args []string) error {
	logger := klog.FromContext(context.Background())

	cfg := api.DefaultConfig()
	if configPath != "" {
		loaded, err := api.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	snap, err := LoadSnapshot(snapshotPath)
	if err != nil {
		return err
	}
	inv := snap.Invocation(nil, nil)

	driver := search.New(logger, rand.New(rand.NewSource(seed)))
	plan, report, err := driver.Run(inv, cfg)
	if err != nil {
		return fmt.Errorf("balance invocation failed: %w", err)
	}

	printReport(report)
	printPlan(plan)
	if dryRun && len(plan) > 0 {
		fmt.Println("(dry run: plan was not acted on)")
	}
	return nil
}

func printReport(r search.Report) {
	fmt.Printf("cost: %.6f -> %.6f (steps=%d, elapsed=%s, skipped=%v)\n",
		r.InitialCost, r.FinalCost, r.Steps, r.Elapsed, r.Skipped)
	for name, contribution := range r.Contributions {
		fmt.Printf("  %-24s %.6f\n", name, contribution)
	}
}

func printPlan(plan api.Plan) {
	if len(plan) == 0 {
		fmt.Println("no plan: no improving movement found")
		return
	}
	fmt.Printf("plan: %d moves\n", len(plan))
	for _, mv := range plan {
		fmt.Printf("  %s: %s -> %s\n", mv.Region, mv.From, mv.To)
	}
}
