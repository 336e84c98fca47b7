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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAI(t *testing.T) {
	for _, name := range AINames() {
		ai, err := GetAI(name)
		require.NoError(t, err)
		assert.Equal(t, name, ai.Name())
	}
	_, err := GetAI("clairvoyant")
	assert.Error(t, err)
	assert.Equal(t, []string{"astar", "greedy"}, AINames())
}

func TestAStarAIAroundObstacle(t *testing.T) {
	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{Obstacles: true})
	g.Obstacles = &ObstacleSet{Cells: []Cell{{5, 4}}}
	g.Food.Position = Cell{5, 6}

	d, reason := new(AStarAI).NextDirection(g)
	assert.Contains(t, []Direction{DirectionUp, DirectionDown}, d)
	assert.Equal(t, "path length 5", reason)
}

func TestAStarAIDoesNotReverse(t *testing.T) {
	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{})
	g.Snake = &Snake{Body: []Cell{{5, 5}, {4, 5}, {3, 5}}, Facing: DirectionRight}
	g.Food.Position = Cell{5, 2}

	d, reason := new(AStarAI).NextDirection(g)
	assert.Equal(t, DirectionDown, d)
	assert.Equal(t, "path length 5", reason)

	// Food directly behind the head
	g.Food.Position = Cell{5, 4}
	d, reason = new(AStarAI).NextDirection(g)
	assert.Equal(t, Direction(""), d)
	assert.Equal(t, "no path", reason)
}

func TestGreedyAI(t *testing.T) {
	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{})
	g.Food.Position = Cell{2, 3}

	d, _ := new(GreedyAI).NextDirection(g)
	assert.Equal(t, DirectionUp, d)

	g.Food.Position = Cell{5, 8}
	d, _ = new(GreedyAI).NextDirection(g)
	assert.Equal(t, DirectionRight, d)
}

func TestGreedyAITrapped(t *testing.T) {
	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{Obstacles: true})
	g.Obstacles = &ObstacleSet{Cells: []Cell{{5, 4}, {4, 3}, {6, 3}}}

	d, reason := new(GreedyAI).NextDirection(g)
	assert.Equal(t, Direction(""), d)
	assert.Equal(t, "trapped", reason)
}

func TestAutopilotGamesEnd(t *testing.T) {
	for _, name := range AINames() {
		ai, err := GetAI(name)
		require.NoError(t, err)
		g, err := NewGame(Board{Height: 12, Width: 16}, Options{Obstacles: true, AI: ai}, newTestRand(7))
		require.NoError(t, err)

		for i := 0; i < 5000 && g.State != StateOver; i++ {
			g.Tick(InputNone)
			if g.State == StateOver {
				break
			}
			require.False(t, g.Snake.Occupies(g.Food.Position), "%s: food inside snake", name)
			require.False(t, g.Obstacles.Has(g.Food.Position), "%s: food on obstacle", name)
		}
		if name == "astar" {
			assert.Positive(t, g.Score)
		}
	}
}
