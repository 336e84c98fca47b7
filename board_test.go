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
)

func TestBoardWrap(t *testing.T) {
	b := Board{Height: 10, Width: 12}
	tests := []struct {
		in   Cell
		want Cell
	}{
		{Cell{0, 4}, Cell{8, 4}},
		{Cell{9, 4}, Cell{1, 4}},
		{Cell{4, 0}, Cell{4, 10}},
		{Cell{4, 11}, Cell{4, 1}},
		{Cell{4, 4}, Cell{4, 4}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, b.Wrap(test.in), "wrap %v", test.in)
	}
}

func TestBoardValidate(t *testing.T) {
	assert.NoError(t, Board{Height: 3, Width: 3}.Validate())
	assert.Error(t, Board{Height: 2, Width: 10}.Validate())
	assert.Error(t, Board{Height: 10, Width: 2}.Validate())
}

func TestBoardInterior(t *testing.T) {
	b := Board{Height: 5, Width: 6}
	assert.Equal(t, 12, b.InteriorArea())
	assert.True(t, b.Interior(Cell{1, 1}))
	assert.True(t, b.Interior(Cell{3, 4}))
	assert.False(t, b.Interior(Cell{0, 1}))
	assert.False(t, b.Interior(Cell{4, 1}))
	assert.False(t, b.Interior(Cell{1, 5}))
	assert.False(t, b.Interior(Cell{-1, 2}))
}

func TestBoardSpawnSnake(t *testing.T) {
	for _, tc := range []struct {
		board  Board
		body   []Cell
		facing Direction
		fits   bool
	}{
		{Board{Height: 10, Width: 10}, []Cell{{5, 3}, {5, 2}, {5, 1}}, DirectionRight, true},
		{Board{Height: 20, Width: 60}, []Cell{{10, 15}, {10, 14}, {10, 13}}, DirectionRight, true},
		{Board{Height: 3, Width: 5}, []Cell{{1, 3}, {1, 2}, {1, 1}}, DirectionRight, true},
		{Board{Height: 5, Width: 4}, []Cell{{3, 2}, {2, 2}, {1, 2}}, DirectionDown, true},
		{Board{Height: 12, Width: 3}, []Cell{{3, 1}, {2, 1}, {1, 1}}, DirectionDown, true},
		{Board{Height: 3, Width: 3}, []Cell{{1, 1}}, DirectionRight, false},
		{Board{Height: 4, Width: 4}, []Cell{{2, 2}, {2, 1}}, DirectionRight, false},
	} {
		s, fits := tc.board.spawnSnake(SnakeSpawnLength)
		assert.Equal(t, tc.fits, fits, "%v", tc.board)
		assert.Equal(t, tc.body, s.Body, "%v", tc.board)
		assert.Equal(t, tc.facing, s.Facing, "%v", tc.board)
		for _, c := range s.Body {
			assert.True(t, tc.board.Interior(c), "%v: %v on border", tc.board, c)
		}
	}
}
