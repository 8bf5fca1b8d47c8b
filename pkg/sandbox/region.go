package sandbox

import "os"

// DefaultRegion is used when no region is configured explicitly and neither
// AWS region environment variable is set.
const DefaultRegion = "us-west-2"

// ResolveRegion returns the AWS region for AgentCore service calls.
//
// Resolution order:
//
//  1. The region argument, when non-empty
//  2. AWS_REGION
//  3. AWS_DEFAULT_REGION
//  4. DefaultRegion
//
// Callers resolve once at construction time; clients never re-read the
// environment after that.
func ResolveRegion(region string) string {
	if region != "" {
		return region
	}
	if env := os.Getenv("AWS_REGION"); env != "" {
		return env
	}
	if env := os.Getenv("AWS_DEFAULT_REGION"); env != "" {
		return env
	}
	return DefaultRegion
}
