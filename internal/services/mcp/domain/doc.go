// Package domain maps MCP tool calls onto dice roller operations.
//
// Handlers accept a Roller so the same tools run against an in-process roller
// or a remote dice server.
package domain
