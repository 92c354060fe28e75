//go:build !test
// +build !test

package cleaner

// defaultRetryTimes defines the amount of default retries for each
// cleanup function.
var defaultRetryTimes = 10
