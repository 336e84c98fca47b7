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

// sl_ither is a terminal snake game by Marcus Soll.
// The border wraps around, optional obstacles move every time food is eaten and
// the snake can be steered by an A* autopilot.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

func main() {
	size := flag.String("size", "", "Size of the board as <height>x<width>. Prompts if empty")
	obstacles := flag.Bool("obstacles", false, "Enables obstacles")
	aiName := flag.String("ai", "", fmt.Sprintf("Autopilot %v. 'ask' prompts for astar, empty string means manual control", AINames()))
	tick := flag.Duration("tick", 100*time.Millisecond, "Duration of a tick")
	seed := flag.Int64("seed", 0, "Random seed. 0 uses the current time")
	quiet := flag.Bool("quiet", false, "Only print result")
	showui := flag.Bool("ui", true, "Enables terminal ui. If disabled, every tick is printed to stdout (needs -ai)")
	print := flag.String("print", "", "Prints every tick into file")
	dump := flag.String("dump", "", "Dumps game data as gob to file")
	printScore := flag.String("printscore", "", "Prints final score and reason into file")
	stream := flag.String("stream", "", "Streams every tick as JSON to a websocket endpoint")
	logFile := flag.String("log", "", "Writes log to file")
	profile := flag.String("profile", "", "Profile program to file")
	maxTicks := flag.Int("maxticks", 0, "Stops the game after the given number of ticks. 0 disables the limit")
	replay := flag.String("replay", "", "Replays a file written by -dump instead of playing")
	flag.Parse()

	// Replace flags
	{
		env := os.Getenv("SNAKE_STREAM")
		if env != "" {
			fmt.Println("Using SNAKE_STREAM from env:", env)
			*stream = env
		}

		env = os.Getenv("SNAKE_SEED")
		if env != "" {
			fmt.Println("Using SNAKE_SEED from env:", env)
			s, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				panic(fmt.Errorf("can not parse SNAKE_SEED: %w", err))
			}
			*seed = s
		}
	}

	// The terminal belongs to the game, so log only into a file
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(uint64(*seed)))
	session := uuid.NewString()
	log.Println("session", session, "seed", *seed)

	stdin := bufio.NewReader(os.Stdin)

	vh, vw := viewport()
	var height, width int
	switch {
	case *replay != "":
		// Size comes from the dump
	case *size != "":
		height, width = parseSize(*size, vh, vw)
	default:
		height, width = askSize(stdin, os.Stdout, vh, vw)
	}

	if *aiName == "ask" && *replay == "" {
		*aiName = ""
		if askYesNo(stdin, os.Stdout, "Enable autopilot?") {
			*aiName = "astar"
		}
	}

	var ai AI
	if *aiName != "" {
		var err error
		ai, err = GetAI(*aiName)
		if err != nil {
			panic(err)
		}
	}

	var UI UI
	var input InputSource = sleepInput{}
	var tui *terminalUI
	if *quiet {
		UI = quietUI{}
	} else if *showui {
		tui = new(terminalUI)
		UI = tui
		input = tui
	} else {
		UI = cmdUI{}
	}
	if tui == nil && ai == nil && *replay == "" {
		panic(fmt.Errorf("manual control needs the terminal ui, use -ai without it"))
	}

	defer func() {
		err := recover()
		if err != nil {
			// Clearly close UI
			if tui != nil {
				tui.close()
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Panicln(err)
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Panicln(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *replay != "" {
		data, err := readDump(*replay)
		if err != nil {
			log.Panicln(err)
		}
		err = replayDump(data, UI, input, *tick)
		if err != nil {
			log.Println("replay:", err)
		}
		return
	}

	if *print != "" {
		UI = &teeUI{File: *print, UI: UI}
	}

	if *dump != "" {
		UI = &dumpUI{File: *dump, UI: UI}
	}

	if *printScore != "" {
		UI = &printScoreUI{File: *printScore, UI: UI}
	}

	if *stream != "" {
		UI = &streamUI{URL: *stream, Session: session, UI: UI}
	}

	game, err := NewGame(Board{Height: height, Width: width}, Options{Obstacles: *obstacles, AI: ai}, rng)
	if err != nil {
		log.Panicln(err)
	}

	err = UI.Initialise(game.PublicCopy())
	if err != nil {
		log.Panicln(err)
	}

	start := time.Now()
	data := func() TickData {
		return TickData{
			Session: session,
			Game:    game.PublicCopy(),
			AI:      game.AIName(),
			Runtime: time.Since(start),
		}
	}

	for game.State != StateOver {
		game.Tick(input.Poll(*tick))
		if *maxTicks > 0 && game.Ticks >= *maxTicks {
			game.Stop(ReasonTickLimit)
		}
		UI.NewTick(data())
	}
	log.Println("game over:", game.Reason, "score", game.Score, "ticks", game.Ticks)

	err = UI.Finish(data())
	if err != nil {
		log.Println("finish:", err)
	}
	UI.Wait()
}
