// Package board generates the minesweeper grid: mine layout and the
// adjacency count of every safe cell. Both are fixed once a board exists;
// only the revealed and flagged marks change afterwards.
//
// Coordinates are (x, y) with x the column and y the row, both zero-based
// from the top-left corner. Cells are stored row-major, so the cell at
// (x, y) lives at index y*Width+x of Cells. That order is also the order
// of the cell list in every game state snapshot.
//
// A board must keep at least one safe cell: Generate and FromMines reject
// non-positive dimensions and mine counts outside [0, Width*Height) with
// CodeBoardInvalidConfig. A board with zero mines is valid.
//
// Board does no locking. The game engine owns it and serializes access.
package board
