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
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// State holds the state of a game.
type State string

const (
	// StateRunning is the state of a game which processes ticks.
	StateRunning State = "running"
	// StatePaused is the state of a paused game. Only InputTogglePause is processed.
	StatePaused State = "paused"
	// StateOver is the final state of a game.
	StateOver State = "over"
)

// Input represents a single input event for a tick.
type Input string

const (
	// InputNone is used if no key was pressed during a tick.
	InputNone Input = ""
	// InputUp requests DirectionUp.
	InputUp Input = "up"
	// InputDown requests DirectionDown.
	InputDown Input = "down"
	// InputLeft requests DirectionLeft.
	InputLeft Input = "left"
	// InputRight requests DirectionRight.
	InputRight Input = "right"
	// InputTogglePause switches between StateRunning and StatePaused.
	InputTogglePause Input = "pause"
	// InputQuit ends the game.
	InputQuit Input = "quit"
)

const (
	// ReasonSelfCollision is used when the snake bit itself.
	ReasonSelfCollision = "self collision"
	// ReasonObstacle is used when the snake ran into an obstacle.
	ReasonObstacle = "obstacle"
	// ReasonNoSpace is used when food or obstacles could not be placed.
	ReasonNoSpace = "no space left"
	// ReasonQuit is used when the player quit the game.
	ReasonQuit = "quit"
	// ReasonTickLimit is used when the game was stopped after a maximum number of ticks.
	ReasonTickLimit = "tick limit"
)

// Options contains the variant of the game.
type Options struct {
	// Obstacles enables obstacles which are regenerated every time food is eaten.
	Obstacles bool
	// AI steers the snake if not nil. Direction inputs are ignored in that case.
	AI AI
}

// Game represents a single session of snake.
// A Game is not safe for concurrent use. UIs should only get a PublicCopy.
type Game struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Snake     *Snake       `json:"snake"`
	Food      Food         `json:"food"`
	Obstacles *ObstacleSet `json:"obstacles,omitempty"` // nil if obstacles are disabled
	Score     int          `json:"score"`
	State     State        `json:"state"`
	Ticks     int          `json:"ticks"`
	Reason    string       `json:"reason,omitempty"`   // why the game is over
	Decision  string       `json:"decision,omitempty"` // last reason given by the AI

	ai  AI
	rng *rand.Rand
}

// NewGame sets up a new game on the board.
// The snake spawns in the left quarter facing right, the food starts in the centre if that cell is free.
// Boards without room for snake and food return a game which is already over with ReasonNoSpace.
func NewGame(b Board, opts Options, rng *rand.Rand) (*Game, error) {
	err := b.Validate()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("no random source")
	}

	snake, fits := b.spawnSnake(SnakeSpawnLength)
	g := &Game{
		Width:  b.Width,
		Height: b.Height,
		Snake:  snake,
		State:  StateRunning,
		ai:     opts.AI,
		rng:    rng,
	}
	if opts.Obstacles {
		g.Obstacles = new(ObstacleSet)
	}

	g.Food.Position = Cell{Row: b.Height / 2, Col: b.Width / 2}
	if !fits {
		g.Stop(ReasonNoSpace)
		return g, nil
	}

	if !b.Interior(g.Food.Position) || g.Snake.Occupies(g.Food.Position) {
		err = g.Food.Relocate(rng, b, g.Snake, nil)
	}
	if err == nil && g.Obstacles != nil {
		err = g.Obstacles.Regenerate(rng, b, g.Snake, g.Food.Position)
	}
	switch {
	case errors.Is(err, ErrNoSpace):
		g.Stop(ReasonNoSpace)
	case err != nil:
		return nil, fmt.Errorf("placing food and obstacles: %w", err)
	}
	return g, nil
}

// Board returns the bounds of the game.
func (g *Game) Board() Board {
	return Board{Height: g.Height, Width: g.Width}
}

// AIName returns the name of the AI steering the snake or an empty string.
func (g *Game) AIName() string {
	if g.ai == nil {
		return ""
	}
	return g.ai.Name()
}

// Tick processes a single input and, if the game is running, advances the game by one step.
// It returns the state after the tick.
func (g *Game) Tick(in Input) State {
	switch g.State {
	case StateOver:
		return g.State
	case StatePaused:
		if in == InputTogglePause {
			g.State = StateRunning
			break
		}
		return g.State
	case StateRunning:
		switch in {
		case InputTogglePause:
			g.State = StatePaused
			return g.State
		case InputQuit:
			g.Stop(ReasonQuit)
			return g.State
		}
	}

	g.Ticks++

	if g.ai != nil {
		var d Direction
		d, g.Decision = g.ai.NextDirection(g)
		g.Snake.ChangeDirection(d)
	} else {
		g.Snake.ChangeDirection(Direction(in))
	}

	g.Snake.Move()

	b := g.Board()
	if g.Snake.CollidedWithBorder(g.Height, g.Width) {
		g.Snake.Body[0] = b.Wrap(g.Snake.Body[0])
	}

	head := g.Snake.Head()
	if g.Snake.CollidedWithSelf() {
		g.Stop(ReasonSelfCollision)
		return g.State
	}
	if g.Obstacles.Has(head) {
		g.Stop(ReasonObstacle)
		return g.State
	}

	if head == g.Food.Position {
		g.Score++
		g.Snake.Grow()
		err := g.Food.Relocate(g.rng, b, g.Snake, g.Obstacles)
		if err == nil && g.Obstacles != nil {
			err = g.Obstacles.Regenerate(g.rng, b, g.Snake, g.Food.Position)
		}
		if errors.Is(err, ErrNoSpace) {
			g.Stop(ReasonNoSpace)
		}
	}
	return g.State
}

// Stop ends the game. The first reason is kept.
func (g *Game) Stop(reason string) {
	if g.State == StateOver {
		return
	}
	g.State = StateOver
	g.Reason = reason
}

// blockedCells returns all cells the snake can not enter safely.
func (g *Game) blockedCells() mapset.Set[Cell] {
	blocked := mapset.New[Cell]()
	for _, c := range g.Snake.Body {
		blocked.Put(c)
	}
	if g.Obstacles != nil {
		for _, c := range g.Obstacles.Cells {
			blocked.Put(c)
		}
	}
	return blocked
}

// PublicCopy returns a deep copy of the game with all private fields set to zero.
// The copy can not be ticked, but it is safe to hand to UIs.
func (g *Game) PublicCopy() *Game {
	return &Game{
		Width:     g.Width,
		Height:    g.Height,
		Snake:     g.Snake.copy(),
		Food:      g.Food,
		Obstacles: g.Obstacles.copy(),
		Score:     g.Score,
		State:     g.State,
		Ticks:     g.Ticks,
		Reason:    g.Reason,
		Decision:  g.Decision,
	}
}

// usage returns the share of interior cells covered by the snake or obstacles.
func (g *Game) usage() float64 {
	b := g.Board()
	if b.InteriorArea() <= 0 {
		return 0
	}
	used := 0
	for _, c := range g.Snake.Body {
		if b.Interior(c) {
			used++
		}
	}
	used += g.Obstacles.Len()
	return float64(used) / float64(b.InteriorArea())
}
