// Package metrics exposes the shape of a frozen cast registry to
// Prometheus. Values are computed at scrape time; nothing on the casting
// path is instrumented.
package metrics
