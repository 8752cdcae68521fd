// Package minesv1 holds the mines.v1 protobuf messages and gRPC bindings
// generated from api/proto/mines/v1/mines.proto.
package minesv1

// CellAt returns the cell at (col, row), or nil when out of range.
func (x *GameStateView) CellAt(col, row int) *Cell {
	if x == nil || col < 0 || row < 0 || col >= int(x.BoardWidth) || row >= int(x.BoardHeight) {
		return nil
	}
	idx := row*int(x.BoardWidth) + col
	if idx >= len(x.Cells) {
		return nil
	}
	return x.Cells[idx]
}
