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
	"os"
)

type teeUI struct {
	File string
	UI   UI
	f    *os.File
}

func (t *teeUI) Initialise(g *Game) error {
	if t.f != nil {
		return fmt.Errorf("file already opened")
	}
	var err error
	t.f, err = os.Create(t.File)
	if err != nil {
		t.f = nil
		return err
	}
	if t.UI != nil {
		return t.UI.Initialise(g)
	}
	return nil
}

func (t *teeUI) NewTick(data TickData) {
	if t.f != nil && data.Game != nil {
		t.f.WriteString("\n")
		t.f.WriteString(data.Game.PrintGame(false))
		t.f.WriteString("\n\n")

		ss := buildGameOverviewStrings(data)
		for i := range ss {
			t.f.WriteString(ss[i])
			t.f.WriteString("\n")
		}
		t.f.WriteString("\n")
	}

	if t.UI != nil {
		t.UI.NewTick(data)
	}
}

func (t *teeUI) Finish(data TickData) error {
	var err error
	if t.f != nil {
		if data.Game != nil {
			t.f.WriteString(fmt.Sprintf("\nGame Over! Final Score: %d (%s)\n", data.Game.Score, data.Game.Reason))
		}
		err = t.f.Close()
		t.f = nil
	}
	if t.UI != nil {
		newErr := t.UI.Finish(data)
		if newErr != nil && err != nil {
			return fmt.Errorf("two errors: %s, %s", err.Error(), newErr.Error())
		} else if newErr != nil {
			err = newErr
		}
	}
	return err
}

func (t *teeUI) Wait() {
	if t.UI != nil {
		t.UI.Wait()
	}
}
