package domain

import "time"

// rollCallTimeout caps the time for a single roller call from an MCP tool handler.
const rollCallTimeout = 5 * time.Second
