// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
)

const (
	// BoardMinSize contains the minimum size of the board (both width and height).
	BoardMinSize = 3
	// MaxObstacles holds the maximum number of obstacles on the board.
	MaxObstacles = 10
	// ObstacleDensity holds how many interior cells are needed per obstacle.
	ObstacleDensity = 10
	// SnakeSpawnLength contains the length of a new snake.
	SnakeSpawnLength = 3
)

// Board represents the bounds of the game. Row/column 0 and Height-1/Width-1 are border.
type Board struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Validate returns an error if the board is too small to play on.
func (b Board) Validate() error {
	if b.Height < BoardMinSize || b.Width < BoardMinSize {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", b.Height, b.Width, BoardMinSize, BoardMinSize)
	}
	return nil
}

// Interior returns whether c is a playable (non border) cell.
func (b Board) Interior(c Cell) bool {
	return c.Row >= 1 && c.Row <= b.Height-2 && c.Col >= 1 && c.Col <= b.Width-2
}

// InteriorArea returns the number of playable cells.
func (b Board) InteriorArea() int {
	return (b.Height - 2) * (b.Width - 2)
}

// Wrap moves a cell on the border to the opposite interior edge.
func (b Board) Wrap(c Cell) Cell {
	switch c.Row {
	case 0:
		c.Row = b.Height - 2
	case b.Height - 1:
		c.Row = 1
	}
	switch c.Col {
	case 0:
		c.Col = b.Width - 2
	case b.Width - 1:
		c.Col = 1
	}
	return c
}

// freeCells returns all interior cells for which occupied returns false, in row major order.
func (b Board) freeCells(occupied func(c Cell) bool) []Cell {
	free := make([]Cell, 0, b.InteriorArea())
	for row := 1; row <= b.Height-2; row++ {
		for col := 1; col <= b.Width-2; col++ {
			c := Cell{Row: row, Col: col}
			if occupied(c) {
				continue
			}
			free = append(free, c)
		}
	}
	return free
}

// spawnSnake lays out a new snake of the given length.
// The snake lies in row Height/2 facing right. Boards too narrow for that get a snake in column Width/2 facing down.
// If the snake fits neither way, a shortened snake is returned together with false.
func (b Board) spawnSnake(length int) (*Snake, bool) {
	switch {
	case b.Width-2 >= length:
		col := clamp(b.Width/4, length, b.Width-2)
		return newSnakeFacing(Cell{Row: b.Height / 2, Col: col}, length, DirectionRight), true
	case b.Height-2 >= length:
		row := clamp(b.Height/4, length, b.Height-2)
		return newSnakeFacing(Cell{Row: row, Col: b.Width / 2}, length, DirectionDown), true
	}
	short := max(b.Width-2, 1)
	return newSnakeFacing(Cell{Row: b.Height / 2, Col: short}, short, DirectionRight), false
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
