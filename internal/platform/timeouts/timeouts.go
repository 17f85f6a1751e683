// Package timeouts defines shared timeout constants used by portfolio commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown caps the flush of pending spans when a command exits.
const TelemetryShutdown = 5 * time.Second

// ExportRender caps one static export run.
const ExportRender = time.Minute
