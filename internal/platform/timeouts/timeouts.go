// Package timeouts defines shared timeout constants used across dicer binaries.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the dice server.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single remote roll.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the MCP HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of servers and telemetry.
const Shutdown = 5 * time.Second
