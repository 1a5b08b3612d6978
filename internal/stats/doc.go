// Package stats provides the business logic orchestration layer for fios-stats.
//
// The collector drives one full collection cycle against the gateway device:
// authenticate, fetch the network counters, print them, forward them to the
// configured sink, and log out. It depends only on the interfaces in the
// domain package, so every collaborator can be mocked in tests.
//
// # Example Usage
//
// Creating and running a collector:
//
//	deps := domain.NewAppDependencies(domain.AppConfig{
//	    GatewayHost: "myfiosgateway.com",
//	})
//	collector := stats.NewCollector(deps.GatewayClient(), deps.MetricWriter(), os.Stdout)
//
//	if err := collector.Collect(password); err != nil {
//	    log.Fatalf("Collection failed: %v", err)
//	}
package stats
