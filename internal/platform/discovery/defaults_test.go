package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	if got := DefaultGRPCAddr(ServiceMines); got != "localhost:50051" {
		t.Fatalf("DefaultGRPCAddr(%q) = %q, want localhost:50051", ServiceMines, got)
	}
	if got := DefaultGRPCAddr("unknown"); got != "" {
		t.Fatalf("expected empty addr for unknown service, got %q", got)
	}
}

func TestDefaultGRPCPort(t *testing.T) {
	if got := DefaultGRPCPort(" mines "); got != 50051 {
		t.Fatalf("DefaultGRPCPort = %d, want 50051", got)
	}
	if got := DefaultGRPCPort("unknown"); got != 0 {
		t.Fatalf("expected no port for unknown service, got %d", got)
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceMines); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceMines); got != "localhost:50051" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
