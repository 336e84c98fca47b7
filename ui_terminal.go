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
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell"
)

// terminalUI draws the game with tcell and doubles as InputSource.
// Drawing happens in the game loop, only event polling runs in its own goroutine.
// If screen is nil, a new screen is created on Initialise.
type terminalUI struct {
	screen tcell.Screen
	colors map[int]tcell.Color
	events chan tcell.Event
	ctx    context.Context
	done   context.CancelFunc
	once   *sync.Once
}

func (tui *terminalUI) Initialise(g *Game) error {
	var err error

	tui.events = make(chan tcell.Event, 5)
	tui.ctx, tui.done = context.WithCancel(context.Background())
	tui.once = new(sync.Once)

	if tui.screen == nil {
		tui.screen, err = tcell.NewScreen()
		if err != nil {
			return err
		}
	}

	err = tui.screen.Init()
	if err != nil {
		return err
	}
	tui.screen.HideCursor()

	tui.colors = map[int]tcell.Color{
		kindEmpty:    tcell.ColorDefault,
		kindBorder:   tcell.ColorDefault,
		kindSnake:    tcell.NewRGBColor(24, 178, 24),
		kindFood:     tcell.NewRGBColor(178, 24, 24),
		kindObstacle: tcell.NewRGBColor(178, 104, 24),
	}

	go tui.pollEvents()

	tui.drawGame(g)
	return nil
}

func (tui *terminalUI) pollEvents() {
	for {
		e := tui.screen.PollEvent()
		if e == nil {
			// Screen finalised
			return
		}
		select {
		case tui.events <- e:
		case <-tui.ctx.Done():
			return
		}
	}
}

func (tui *terminalUI) NewTick(data TickData) {
	tui.drawGame(data.Game)
}

func (tui *terminalUI) Finish(data TickData) error {
	g := data.Game
	if g == nil {
		return nil
	}
	tui.screen.Clear()
	row := g.Height / 2
	tui.drawString(g.Width/2-5, row, "Game Over", tcell.StyleDefault)
	tui.drawString(g.Width/2-8, row+1, fmt.Sprintf("Final Score: %d", g.Score), tcell.StyleDefault)
	tui.drawString(g.Width/2-8, row+3, "Press Enter", tcell.StyleDefault)
	tui.screen.Show()
	return nil
}

// Wait blocks until the game over screen is confirmed with enter.
func (tui *terminalUI) Wait() {
	for {
		select {
		case e := <-tui.events:
			ev, ok := e.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch ev.Key() {
			case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyCtrlC:
				tui.close()
				return
			}
		case <-tui.ctx.Done():
			return
		}
	}
}

func (tui *terminalUI) close() {
	if tui.once == nil {
		return
	}
	tui.once.Do(func() {
		tui.done()
		if tui.screen != nil {
			tui.screen.Fini()
		}
	})
}

// Poll implements InputSource.
func (tui *terminalUI) Poll(timeout time.Duration) Input {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case e := <-tui.events:
			switch ev := e.(type) {
			case *tcell.EventKey:
				in := keyToInput(ev)
				if in != InputNone {
					return in
				}
			case *tcell.EventResize:
				tui.screen.Sync()
			}
		case <-timer.C:
			return InputNone
		}
	}
}

func keyToInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return InputUp
	case tcell.KeyDown:
		return InputDown
	case tcell.KeyLeft:
		return InputLeft
	case tcell.KeyRight:
		return InputRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return InputQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return InputTogglePause
		case 'q':
			return InputQuit
		case 'k', 'w':
			return InputUp
		case 'j', 's':
			return InputDown
		case 'h', 'a':
			return InputLeft
		case 'l', 'd':
			return InputRight
		}
	}
	return InputNone
}

func (tui *terminalUI) drawString(x, y int, v string, style tcell.Style) {
	for i, r := range []rune(v) {
		tui.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (tui *terminalUI) drawGame(g *Game) {
	if g == nil {
		tui.screen.Clear()
		return
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			r, kind := g.runeAt(row, col)
			tui.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(tui.colors[kind]))
		}
	}
	if g.State == StatePaused {
		tui.drawString(1, g.Height-1, "paused", tcell.StyleDefault.Reverse(true))
	}
	tui.screen.Show()
}
