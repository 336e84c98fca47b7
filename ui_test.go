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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordUI remembers all calls.
type recordUI struct {
	initialised bool
	ticks       int
	finished    bool
	waited      bool
	final       *Game
}

func (r *recordUI) Initialise(g *Game) error {
	r.initialised = true
	return nil
}

func (r *recordUI) NewTick(data TickData) {
	r.ticks++
}

func (r *recordUI) Finish(data TickData) error {
	r.finished = true
	r.final = data.Game
	return nil
}

func (r *recordUI) Wait() {
	r.waited = true
}

// playGame runs a short autopilot game through ui.
func playGame(t *testing.T, ui UI, ticks int) *Game {
	t.Helper()
	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{AI: new(AStarAI)})
	require.NoError(t, ui.Initialise(g.PublicCopy()))
	for i := 0; i < ticks && g.State != StateOver; i++ {
		g.Tick(InputNone)
		ui.NewTick(TickData{Session: "test", Game: g.PublicCopy(), AI: g.AIName()})
	}
	g.Stop(ReasonTickLimit)
	require.NoError(t, ui.Finish(TickData{Session: "test", Game: g.PublicCopy(), AI: g.AIName()}))
	ui.Wait()
	return g
}

func TestSleepInput(t *testing.T) {
	start := time.Now()
	assert.Equal(t, InputNone, sleepInput{}.Poll(10*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDumpUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dump.gob")
	inner := new(recordUI)
	g := playGame(t, &dumpUI{File: file, UI: inner}, 5)

	assert.True(t, inner.initialised)
	assert.Equal(t, 5, inner.ticks)
	assert.True(t, inner.finished)
	assert.True(t, inner.waited)

	data, err := readDump(file)
	require.NoError(t, err)
	require.Len(t, data, 5)
	assert.Equal(t, "astar", data[0].AI)
	assert.Equal(t, 5, data[4].Game.Ticks)
	assert.Equal(t, g.Food.Position, data[4].Game.Food.Position)
	assert.Equal(t, g.Snake.Body, data[4].Game.Snake.Body)
}

// constInput returns the same input on every Poll.
type constInput Input

func (c constInput) Poll(timeout time.Duration) Input {
	return Input(c)
}

func TestReplayDump(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dump.gob")
	g := playGame(t, &dumpUI{File: file}, 4)
	data, err := readDump(file)
	require.NoError(t, err)

	ui := new(recordUI)
	require.NoError(t, replayDump(data, ui, constInput(InputNone), 0))
	assert.True(t, ui.initialised)
	assert.Equal(t, 4, ui.ticks)
	assert.True(t, ui.finished)
	assert.True(t, ui.waited)
	require.NotNil(t, ui.final)
	assert.Equal(t, g.Snake.Body, ui.final.Snake.Body)

	ui = new(recordUI)
	require.NoError(t, replayDump(data, ui, constInput(InputQuit), 0))
	assert.Zero(t, ui.ticks)
	assert.True(t, ui.finished)
	assert.Equal(t, 1, ui.final.Ticks)

	assert.Error(t, replayDump(nil, new(recordUI), constInput(InputNone), 0))
	_, err = readDump(filepath.Join(t.TempDir(), "missing.gob"))
	assert.Error(t, err)
}

func TestTeeUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tee.txt")
	playGame(t, &teeUI{File: file}, 3)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	s := string(b)
	assert.Equal(t, 3, strings.Count(s, "tick: "))
	assert.Contains(t, s, "tick: 3")
	assert.Contains(t, s, "Game Over! Final Score:")
}

func TestPrintScoreUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "score.txt")
	// Food is eaten on the second tick
	g := playGame(t, &printScoreUI{File: file, UI: quietUI{}}, 2)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "1\ntick limit\n", string(b))
	assert.Equal(t, 1, g.Score)
}

func TestStreamUI(t *testing.T) {
	frames := make(chan StreamFrame, 100)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		defer close(frames)
		for {
			_, b, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var f StreamFrame
			if json.Unmarshal(b, &f) == nil {
				frames <- f
			}
		}
	}))
	defer srv.Close()

	session := uuid.NewString()
	s := &streamUI{URL: "ws" + strings.TrimPrefix(srv.URL, "http"), Session: session}
	require.NoError(t, s.Initialise(nil))

	g := newTestGame(t, Board{Height: 10, Width: 10}, Options{})
	for i := 0; i < 3; i++ {
		g.Tick(InputNone)
		s.NewTick(TickData{Session: session, Game: g.PublicCopy()})
	}
	g.Stop(ReasonQuit)
	require.NoError(t, s.Finish(TickData{Session: session, Game: g.PublicCopy()}))

	var got []StreamFrame
	timeout := time.After(5 * time.Second)
collect:
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				break collect
			}
			got = append(got, f)
		case <-timeout:
			t.Fatal("timeout waiting for frames")
		}
	}

	require.Len(t, got, 4)
	for i, f := range got {
		assert.Equal(t, session, f.Session)
		assert.Equal(t, i == 3, f.Final)
	}
	assert.Equal(t, 3, got[2].Game.Ticks)
	assert.Equal(t, ReasonQuit, got[3].Game.Reason)
	assert.Equal(t, g.Snake.Body, got[3].Game.Snake.Body)
}

func TestStreamUIDialError(t *testing.T) {
	s := &streamUI{URL: "ws://127.0.0.1:1/none"}
	assert.Error(t, s.Initialise(nil))
}
