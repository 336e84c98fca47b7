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
	"time"
)

// TickData holds the data of a single tick as seen by the UIs.
type TickData struct {
	Session string
	Game    *Game // public copy
	AI      string
	Runtime time.Duration
}

// The UI interface allows the usage of different UIs.
//
// All methods are called from the game loop, UIs must not block except in Wait.
type UI interface {
	Initialise(g *Game) error
	NewTick(data TickData)
	Finish(data TickData) error
	Wait()
}

// The InputSource interface provides the input of a single tick.
// Poll returns as soon as an input is available, but waits at most timeout.
type InputSource interface {
	Poll(timeout time.Duration) Input
}

// sleepInput never produces input and only paces the game.
type sleepInput struct{}

func (s sleepInput) Poll(timeout time.Duration) Input {
	time.Sleep(timeout)
	return InputNone
}

func buildGameOverviewStrings(td TickData) []string {
	g := td.Game
	if g == nil {
		return nil
	}
	ss := make([]string, 0)
	ss = append(ss, fmt.Sprintf("tick: %d", g.Ticks))
	ss = append(ss, fmt.Sprintf("score: %d", g.Score))
	ss = append(ss, fmt.Sprintf("state: %s", g.State))
	ss = append(ss, fmt.Sprintf("size: %d x %d", g.Height, g.Width))
	ss = append(ss, fmt.Sprintf("length: %d", len(g.Snake.Body)))
	ss = append(ss, fmt.Sprintf("usage: %.2f", g.usage()))
	ss = append(ss, fmt.Sprintf("obstacles: %d", g.Obstacles.Len()))
	ss = append(ss, fmt.Sprintf("runtime: %s", td.Runtime.Truncate(1*time.Second).String()))
	if td.AI != "" {
		ss = append(ss, "")
		ss = append(ss, fmt.Sprintf("ai: %s", td.AI))
		ss = append(ss, fmt.Sprintf("decision: %s", g.Decision))
	}
	if g.State == StateOver {
		ss = append(ss, "")
		ss = append(ss, fmt.Sprintf("reason: %s", g.Reason))
	}
	return ss
}

type quietUI struct {
}

func (q quietUI) Initialise(g *Game) error {
	return nil
}

func (q quietUI) NewTick(data TickData) {
}

func (q quietUI) Finish(data TickData) error {
	if data.Game == nil {
		return nil
	}
	fmt.Printf("Score: %d (%s)\n", data.Game.Score, data.Game.Reason)
	return nil
}

func (q quietUI) Wait() {
}
