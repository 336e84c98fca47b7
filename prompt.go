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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// DefaultHeight holds the preferred board height if the terminal is large enough.
	DefaultHeight = 20
	// DefaultWidth holds the preferred board width if the terminal is large enough.
	DefaultWidth = 60

	fallbackViewportHeight = 24
	fallbackViewportWidth  = 80
)

// viewport returns the size of the terminal as height and width.
func viewport() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackViewportHeight, fallbackViewportWidth
	}
	return h, w
}

func defaultSize(viewportHeight, viewportWidth int) (int, int) {
	h := max(BoardMinSize, min(DefaultHeight, viewportHeight-2))
	w := max(BoardMinSize, min(DefaultWidth, viewportWidth-2))
	return h, w
}

// parseSize parses "<H>x<W>" and clamps the result to [BoardMinSize, viewport].
// Empty or malformed input results in the default size.
func parseSize(input string, viewportHeight, viewportWidth int) (int, int) {
	input = strings.TrimSpace(input)
	parts := strings.Split(input, "x")
	if input == "" || len(parts) != 2 {
		return defaultSize(viewportHeight, viewportWidth)
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return defaultSize(viewportHeight, viewportWidth)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return defaultSize(viewportHeight, viewportWidth)
	}

	h = max(BoardMinSize, min(h, viewportHeight))
	w = max(BoardMinSize, min(w, viewportWidth))
	return h, w
}

// askSize prompts for the board size.
func askSize(in *bufio.Reader, out io.Writer, viewportHeight, viewportWidth int) (int, int) {
	h, w := defaultSize(viewportHeight, viewportWidth)
	fmt.Fprintf(out, "Enter the size of the map (default: %dx%d): ", h, w)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return h, w
	}
	return parseSize(line, viewportHeight, viewportWidth)
}

// askYesNo prompts a yes/no question. Everything except yes is no.
func askYesNo(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N): ", question)
	line, _ := in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
