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
	"sort"
)

// The AI interface provides the interface for different autopilots.
//
// NextDirection is called once per tick before the snake moves. The game must not be modified.
// An empty Direction keeps the current facing. The returned reason is shown in the UI.
type AI interface {
	NextDirection(g *Game) (Direction, string)
	Name() string
}

var aiRegistry = map[string]func() AI{
	"astar":  func() AI { return new(AStarAI) },
	"greedy": func() AI { return new(GreedyAI) },
}

// GetAI returns the AI registered under name.
func GetAI(name string) (AI, error) {
	f, ok := aiRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown ai %q (available: %v)", name, AINames())
	}
	return f(), nil
}

// AINames returns the names of all available AIs.
func AINames() []string {
	names := make([]string, 0, len(aiRegistry))
	for k := range aiRegistry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AStarAI follows the shortest path to the food.
type AStarAI struct{}

// NextDirection implements AI.
func (a *AStarAI) NextDirection(g *Game) (Direction, string) {
	blocked := g.blockedCells()
	back := g.Snake.Facing.Opposite()
	if o, ok := back.offset(); ok {
		// The snake can not turn around
		blocked.Put(g.Snake.Head().Add(o))
	}

	path := FindPath(g.Board(), blocked, g.Snake.Head(), g.Food.Position)
	d, ok := StepDirection(path)
	if !ok || d == back {
		return "", "no path"
	}
	return d, fmt.Sprintf("path length %d", len(path)-1)
}

// Name implements AI.
func (a *AStarAI) Name() string {
	return "astar"
}

// GreedyAI takes the safe step which reduces the distance to the food the most.
// It does not look ahead and happily runs into dead ends.
type GreedyAI struct{}

// NextDirection implements AI.
func (a *GreedyAI) NextDirection(g *Game) (Direction, string) {
	b := g.Board()
	blocked := g.blockedCells()
	head := g.Snake.Head()

	best := Direction("")
	bestDistance := -1
	for _, d := range searchOrder {
		if d == g.Snake.Facing.Opposite() {
			continue
		}
		o, _ := d.offset()
		next := head.Add(o)
		if !b.Interior(next) {
			next = b.Wrap(next)
		}
		if blocked.Has(next) {
			continue
		}
		distance := manhattan(next, g.Food.Position)
		if bestDistance == -1 || distance < bestDistance {
			best = d
			bestDistance = distance
		}
	}

	if best == "" {
		return "", "trapped"
	}
	return best, fmt.Sprintf("distance %d", bestDistance)
}

// Name implements AI.
func (a *GreedyAI) Name() string {
	return "greedy"
}
