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
	"encoding/gob"
	"errors"
	"os"
	"time"
)

// dumpUI collects all ticks and writes them gob encoded on Finish.
type dumpUI struct {
	File       string
	UI         UI
	gameStates []TickData
}

func (d *dumpUI) Initialise(g *Game) error {
	if d.UI != nil {
		return d.UI.Initialise(g)
	}
	return nil
}

func (d *dumpUI) NewTick(data TickData) {
	d.gameStates = append(d.gameStates, data)

	if d.UI != nil {
		d.UI.NewTick(data)
	}
}

func (d *dumpUI) Finish(data TickData) error {
	var err error
	if d.UI != nil {
		err = d.UI.Finish(data)
	}

	if len(d.gameStates) == 0 {
		return err
	}

	f, newErr := os.Create(d.File)
	if newErr != nil {
		return newErr
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	newErr = enc.Encode(d.gameStates)

	if newErr != nil {
		return newErr
	}

	return err
}

func (d *dumpUI) Wait() {
	if d.UI != nil {
		d.UI.Wait()
	}
}

// readDump reads a file written by dumpUI.
func readDump(file string) ([]TickData, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var data []TickData
	err = gob.NewDecoder(f).Decode(&data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// replayDump plays recorded ticks on ui, one tick per Poll of input.
// InputQuit stops the replay early, the last shown tick is used for Finish.
func replayDump(data []TickData, ui UI, input InputSource, tick time.Duration) error {
	if len(data) == 0 {
		return errors.New("dump contains no ticks")
	}
	err := ui.Initialise(data[0].Game)
	if err != nil {
		return err
	}

	last := data[0]
	for i := range data {
		if input.Poll(tick) == InputQuit {
			break
		}
		ui.NewTick(data[i])
		last = data[i]
	}

	err = ui.Finish(last)
	ui.Wait()
	return err
}
