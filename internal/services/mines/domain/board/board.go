package board

import (
	"fmt"
	"math/rand"
	"strconv"

	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
)

type Cell struct {
	Revealed      bool
	Flagged       bool
	IsMine        bool
	AdjacentMines int // 0..8, meaningless for mines
}

type Point struct {
	X int
	Y int
}

// Board is a fixed-size grid stored row-major (index y*Width+x).
type Board struct {
	Width     int
	Height    int
	MineCount int
	cells     []Cell
}

// Generate builds a board with mineCount mines chosen uniformly at random
// without replacement, then computes adjacency counts.
func Generate(width, height, mineCount int, rng *rand.Rand) (*Board, error) {
	if err := validate(width, height, mineCount); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}

	b := newBoard(width, height, mineCount)

	// Partial Fisher-Yates: the first mineCount slots end up a uniform sample.
	indexes := make([]int, len(b.cells))
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		b.cells[indexes[i]].IsMine = true
	}

	b.countAdjacent()
	return b, nil
}

// FromMines builds a board with mines at exactly the given points.
// Duplicate points are rejected so MineCount always matches the layout.
func FromMines(width, height int, mines []Point) (*Board, error) {
	if err := validate(width, height, len(mines)); err != nil {
		return nil, err
	}
	b := newBoard(width, height, len(mines))
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, apperrors.WithMetadata(apperrors.CodeBoardInvalidConfig,
				fmt.Sprintf("mine (%d,%d) is outside the %dx%d board", p.X, p.Y, width, height),
				map[string]string{"x": strconv.Itoa(p.X), "y": strconv.Itoa(p.Y)})
		}
		cell := b.At(p.X, p.Y)
		if cell.IsMine {
			return nil, apperrors.New(apperrors.CodeBoardInvalidConfig,
				fmt.Sprintf("duplicate mine at (%d,%d)", p.X, p.Y))
		}
		cell.IsMine = true
	}
	b.countAdjacent()
	return b, nil
}

func validate(width, height, mineCount int) error {
	if width <= 0 || height <= 0 {
		return apperrors.WithMetadata(apperrors.CodeBoardInvalidConfig,
			fmt.Sprintf("board dimensions must be positive, got %dx%d", width, height),
			map[string]string{"width": strconv.Itoa(width), "height": strconv.Itoa(height)})
	}
	if mineCount < 0 || mineCount >= width*height {
		return apperrors.WithMetadata(apperrors.CodeBoardInvalidConfig,
			fmt.Sprintf("mine count must be in [0, %d), got %d", width*height, mineCount),
			map[string]string{"mine_count": strconv.Itoa(mineCount), "cells": strconv.Itoa(width * height)})
	}
	return nil
}

func newBoard(width, height, mineCount int) *Board {
	return &Board{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		cells:     make([]Cell, width*height),
	}
}

func (b *Board) countAdjacent() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cell := b.At(x, y)
			if cell.IsMine {
				continue
			}
			count := 0
			b.EachNeighbor(x, y, func(nx, ny int) {
				if b.At(nx, ny).IsMine {
					count++
				}
			})
			cell.AdjacentMines = count
		}
	}
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x, y). The caller must check InBounds first.
func (b *Board) At(x, y int) *Cell {
	return &b.cells[y*b.Width+x]
}

func (b *Board) Len() int {
	return len(b.cells)
}

// Cells returns the backing row-major slice. Callers outside the owning
// engine must treat it as read-only.
func (b *Board) Cells() []Cell {
	return b.cells
}

// EachNeighbor calls fn for every in-bounds cell of the Moore neighbourhood
// of (x, y), excluding (x, y) itself.
func (b *Board) EachNeighbor(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// EachCell walks row-major.
func (b *Board) EachCell(fn func(x, y int, cell *Cell)) {
	for i := range b.cells {
		fn(i%b.Width, i/b.Width, &b.cells[i])
	}
}
