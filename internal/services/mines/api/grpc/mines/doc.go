// Package mines implements the mines.v1.MinesGame gRPC API on top of the
// shared room. Each JoinGame stream is one session; its handler goroutine
// runs the session's delivery loop and owns every Send on the stream.
package mines
