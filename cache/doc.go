// Package cache memoizes directory query results in an LRU store with
// optional TTL expiry. Keys are built by the fingerprint helpers in this
// package and embed every input that shapes the result, thresholds
// included, so configuration changes can never serve stale answers.
package cache
