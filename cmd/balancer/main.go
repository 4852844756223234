// Command balancer runs one balance invocation of the cluster load
// balancer core against a cluster snapshot and prints the resulting plan.
package main

import "github.com/clusterbalance/balancer/cmd/balancer/cmd"

func main() {
	cmd.Execute()
}
