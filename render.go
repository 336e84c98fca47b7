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
	"strings"
)

const (
	runeEmpty    = ' '
	runeBody     = '▒'
	runeFood     = 'π'
	runeObstacle = '#'
)

// Kinds of cells, used to pick colours.
const (
	kindEmpty = iota
	kindBorder
	kindSnake
	kindFood
	kindObstacle
)

var colours = []string{"\033[39m", "\033[39m", "\033[32m", "\033[31m", "\033[33m"}
var colourReset = "\033[0m"

func (g Game) String() string {
	return g.PrintGame(false)
}

// PrintGame returns a string representation of the board including border and score.
func (g Game) PrintGame(colour bool) string {
	var s strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			r, kind := g.runeAt(row, col)
			if colour {
				s.WriteString(colours[kind])
			}
			s.WriteRune(r)
			if colour {
				s.WriteString(colourReset)
			}
		}
		if row < g.Height-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}

// scoreText returns the score label and its column on the top border.
func (g *Game) scoreText() (string, int) {
	col := g.Width/2 - 4
	if col < 0 {
		col = 0
	}
	return fmt.Sprintf("Score: %d", g.Score), col
}

func (g *Game) runeAt(row, col int) (rune, int) {
	if row == 0 {
		text, start := g.scoreText()
		if i := col - start; i >= 0 && i < len(text) && col > 0 && col < g.Width-1 {
			return rune(text[i]), kindBorder
		}
	}

	switch {
	case (row == 0 || row == g.Height-1) && (col == 0 || col == g.Width-1):
		return '+', kindBorder
	case row == 0 || row == g.Height-1:
		return '-', kindBorder
	case col == 0 || col == g.Width-1:
		return '|', kindBorder
	}

	c := Cell{Row: row, Col: col}
	if g.Snake != nil && len(g.Snake.Body) > 0 {
		if g.Snake.Head() == c {
			switch g.Snake.Facing {
			case DirectionUp:
				return '⮉', kindSnake
			case DirectionRight:
				return '⮊', kindSnake
			case DirectionDown:
				return '⮋', kindSnake
			case DirectionLeft:
				return '⮈', kindSnake
			}
		}
		if g.Snake.Occupies(c) {
			return runeBody, kindSnake
		}
	}
	if g.Food.Position == c {
		return runeFood, kindFood
	}
	if g.Obstacles.Has(c) {
		return runeObstacle, kindObstacle
	}
	return runeEmpty, kindEmpty
}
