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
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// searchOrder is the order in which neighbours are expanded. It only influences the shape of tied paths.
var searchOrder = []Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}

type pathNode struct {
	cell Cell
	g    int
	f    int
	seq  int
}

// FindPath returns a shortest path from start to goal (both included) using A* with the Manhattan distance as heuristic.
// Only interior cells not contained in blocked are entered, the goal can always be entered.
// If no path exists, nil is returned.
func FindPath(b Board, blocked mapset.Set[Cell], start, goal Cell) []Cell {
	// Equal f is resolved by insertion order to keep the search deterministic
	frontier := heap.New[pathNode](func(x, y pathNode) bool {
		if x.f != y.f {
			return x.f < y.f
		}
		return x.seq < y.seq
	})
	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]int{start: 0}
	closed := mapset.New[Cell]()

	seq := 0
	frontier.Push(pathNode{cell: start, g: 0, f: manhattan(start, goal), seq: seq})

	for frontier.Size() > 0 {
		current, _ := frontier.Pop()
		if current.cell == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		if closed.Has(current.cell) {
			continue
		}
		closed.Put(current.cell)

		for _, d := range searchOrder {
			o, _ := d.offset()
			next := current.cell.Add(o)
			if !b.Interior(next) {
				continue
			}
			if next != goal && blocked.Has(next) {
				continue
			}
			if closed.Has(next) {
				continue
			}
			g := current.g + 1
			if old, ok := gScore[next]; ok && g >= old {
				continue
			}
			gScore[next] = g
			cameFrom[next] = current.cell
			seq++
			frontier.Push(pathNode{cell: next, g: g, f: g + manhattan(next, goal), seq: seq})
		}
	}
	return nil
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	for c := goal; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// StepDirection returns the direction of the first step of path.
// Paths with less than two cells or without a unit step yield false.
func StepDirection(path []Cell) (Direction, bool) {
	if len(path) < 2 {
		return "", false
	}
	return directionBetween(path[0], path[1])
}

func directionBetween(from, to Cell) (Direction, bool) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dr == -1 && dc == 0:
		return DirectionUp, true
	case dr == 1 && dc == 0:
		return DirectionDown, true
	case dr == 0 && dc == -1:
		return DirectionLeft, true
	case dr == 0 && dc == 1:
		return DirectionRight, true
	}
	return "", false
}
