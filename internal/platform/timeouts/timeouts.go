// Package timeouts defines shared timeout constants used across the
// minesweeper server and client.
package timeouts

import "time"

// GRPCDial caps the wait time when the client dials the game server.
const GRPCDial = 5 * time.Second

// GRPCRequest caps a single unary reveal/flag call from the client.
const GRPCRequest = 2 * time.Second

// Delivery caps how long one state frame may take to reach one session.
const Delivery = 5 * time.Second

// ReadHeader limits how long the websocket HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight work during graceful shutdown.
const Shutdown = 5 * time.Second

// KeepaliveTime is how long a server connection may sit idle before the
// server pings the client.
const KeepaliveTime = 30 * time.Second

// KeepaliveTimeout is how long the server waits for a ping ack before it
// closes the connection and fails its streams.
const KeepaliveTimeout = 10 * time.Second

// KeepaliveMinTime is the shortest client ping interval the server accepts.
const KeepaliveMinTime = 10 * time.Second
