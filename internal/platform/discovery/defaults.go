// Package discovery centralizes the default addresses of the minesweeper
// processes.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceMines is the game server gRPC identity.
	ServiceMines = "mines"
)

// DefaultHost is the host clients reach when no address is configured.
const DefaultHost = "localhost"

var grpcPorts = map[string]int{
	ServiceMines: 50051,
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or 0.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns the conventional client gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return DefaultHost + ":" + strconv.Itoa(port)
}
