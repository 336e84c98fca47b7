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
	"errors"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// ErrNoSpace is returned if there are not enough free cells left to place food or obstacles.
var ErrNoSpace = errors.New("no space left")

// Food represents the single piece of food on the board.
type Food struct {
	Position Cell `json:"position"`
}

// Relocate moves the food to a random interior cell which is neither part of the snake nor an obstacle.
// obstacles might be nil.
func (f *Food) Relocate(rng *rand.Rand, b Board, snake *Snake, obstacles *ObstacleSet) error {
	free := b.freeCells(func(c Cell) bool {
		return snake.Occupies(c) || obstacles.Has(c)
	})
	if len(free) == 0 {
		return ErrNoSpace
	}
	f.Position = free[rng.Intn(len(free))]
	return nil
}

// ObstacleCount returns the number of obstacles placed on a board.
func ObstacleCount(b Board) int {
	n := b.InteriorArea() / ObstacleDensity
	if n > MaxObstacles {
		n = MaxObstacles
	}
	if n < 0 {
		n = 0
	}
	return n
}

// ObstacleSet holds static blocking cells.
// Cells keeps the placement order, the index is rebuilt on demand (e.g. after decoding).
type ObstacleSet struct {
	Cells []Cell `json:"cells"`

	index mapset.Set[Cell]
}

// Regenerate replaces all obstacles with ObstacleCount(b) new ones, avoiding the snake and the food.
// On ErrNoSpace the set is left empty.
func (o *ObstacleSet) Regenerate(rng *rand.Rand, b Board, snake *Snake, food Cell) error {
	o.Cells = nil
	o.index = mapset.New[Cell]()

	target := ObstacleCount(b)
	free := b.freeCells(func(c Cell) bool {
		return c == food || snake.Occupies(c)
	})
	if len(free) < target {
		return ErrNoSpace
	}

	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	o.Cells = free[:target:target]
	for _, c := range o.Cells {
		o.index.Put(c)
	}
	return nil
}

// Has returns whether c is an obstacle. A nil set holds no obstacles.
func (o *ObstacleSet) Has(c Cell) bool {
	if o == nil {
		return false
	}
	if o.index.Size() != len(o.Cells) {
		o.reindex()
	}
	return o.index.Has(c)
}

// Len returns the number of obstacles.
func (o *ObstacleSet) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Cells)
}

func (o *ObstacleSet) reindex() {
	o.index = mapset.New[Cell]()
	for _, c := range o.Cells {
		o.index.Put(c)
	}
}

func (o *ObstacleSet) copy() *ObstacleSet {
	if o == nil {
		return nil
	}
	n := &ObstacleSet{Cells: make([]Cell, len(o.Cells))}
	copy(n.Cells, o.Cells)
	return n
}
