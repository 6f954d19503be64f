// Package service wires protocol transport to the dice MCP tools.
//
// It knows how to run MCP over stdio or HTTP and delegates rolling to the
// domain handlers, backed by either an in-process roller or a dice server.
package service
