// Package workers sizes concurrency for upload batches based on available
// CPU, with an environment override for constrained deployments.
package workers
