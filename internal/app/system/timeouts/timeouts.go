// Package timeouts centralizes the context deadlines used for database
// work, so features agree on how long each class of operation may take.
//
// Choosing a timeout:
//   - Ping: health checks
//   - Short: single-document reads
//   - Medium: list queries and single-record writes
//   - Long: multi-collection operations (profile stats, cascading deletes)
package timeouts

import "time"

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
	Long   = 30 * time.Second
)
