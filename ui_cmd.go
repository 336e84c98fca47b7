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

type cmdUI struct {
}

func (c cmdUI) Initialise(g *Game) error {
	fmt.Printf("Starting game %d x %d\n", g.Height, g.Width)
	return nil
}

func (c cmdUI) NewTick(data TickData) {
	if data.Game == nil {
		return
	}
	fmt.Println()
	fmt.Println(data.Game.PrintGame(true))
	fmt.Println()

	ss := buildGameOverviewStrings(data)
	for i := range ss {
		if strings.TrimSpace(ss[i]) != "" {
			fmt.Println(ss[i])
		}
	}
}

func (c cmdUI) Finish(data TickData) error {
	if data.Game == nil {
		return nil
	}
	fmt.Printf("\nGame Over!\nFinal Score: %d (%s)\n\n", data.Game.Score, data.Game.Reason)
	return nil
}

func (c cmdUI) Wait() {
}
