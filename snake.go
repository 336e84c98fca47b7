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

// Direction represents the facing of the snake.
type Direction string

const (
	// DirectionUp contains the string value representing "up"
	DirectionUp Direction = "up"
	// DirectionDown contains the string value representing "down"
	DirectionDown Direction = "down"
	// DirectionLeft contains the string value representing "left"
	DirectionLeft Direction = "left"
	// DirectionRight contains the string value representing "right"
	DirectionRight Direction = "right"
)

// Opposite returns the direction pointing the other way.
// Unknown directions return an empty Direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return ""
}

func (d Direction) offset() (Cell, bool) {
	switch d {
	case DirectionUp:
		return Cell{Row: -1}, true
	case DirectionDown:
		return Cell{Row: 1}, true
	case DirectionLeft:
		return Cell{Col: -1}, true
	case DirectionRight:
		return Cell{Col: 1}, true
	}
	return Cell{}, false
}

// Cell is a position on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the cell shifted by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

func manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Snake represents the player. Body[0] is the head.
type Snake struct {
	Body   []Cell    `json:"body"`
	Facing Direction `json:"facing"`

	// Growth is applied on the next Move
	pendingGrowth bool
}

// NewSnake returns a snake of the given length facing right, with the body trailing to the left of head.
func NewSnake(head Cell, length int) *Snake {
	return newSnakeFacing(head, length, DirectionRight)
}

func newSnakeFacing(head Cell, length int, facing Direction) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		Body:   make([]Cell, length),
		Facing: facing,
	}
	o, _ := facing.Opposite().offset()
	for i := range s.Body {
		s.Body[i] = Cell{Row: head.Row + i*o.Row, Col: head.Col + i*o.Col}
	}
	return s
}

// Head returns the head of the snake.
func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Move advances the snake by one cell in the facing direction.
// The tail is dropped unless growth is pending.
func (s *Snake) Move() {
	o, ok := s.Facing.offset()
	if !ok {
		return
	}
	head := s.Body[0].Add(o)

	s.Body = append(s.Body, Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head

	if s.pendingGrowth {
		s.pendingGrowth = false
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// ChangeDirection sets the facing to d. Reversing onto the body and unknown directions are ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if _, ok := d.offset(); !ok {
		return
	}
	if d == s.Facing.Opposite() {
		return
	}
	s.Facing = d
}

// CollidedWithBorder returns whether the head is on the border of a height x width board.
func (s *Snake) CollidedWithBorder(height, width int) bool {
	h := s.Head()
	return h.Row == 0 || h.Row == height-1 || h.Col == 0 || h.Col == width-1
}

// CollidedWithSelf returns whether the head overlaps the rest of the body.
func (s *Snake) CollidedWithSelf() bool {
	h := s.Head()
	for _, c := range s.Body[1:] {
		if c == h {
			return true
		}
	}
	return false
}

// Grow lets the snake grow by one cell on the next Move.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// growing returns whether growth is pending.
func (s *Snake) growing() bool {
	return s.pendingGrowth
}

// Occupies returns whether c is part of the body.
func (s *Snake) Occupies(c Cell) bool {
	if s == nil {
		return false
	}
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

func (s *Snake) copy() *Snake {
	if s == nil {
		return nil
	}
	n := &Snake{
		Body:          make([]Cell, len(s.Body)),
		Facing:        s.Facing,
		pendingGrowth: s.pendingGrowth,
	}
	copy(n.Body, s.Body)
	return n
}
