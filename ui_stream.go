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
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// StreamFrame is the JSON message sent to spectators for every tick.
type StreamFrame struct {
	Session string `json:"session"`
	AI      string `json:"ai,omitempty"`
	Final   bool   `json:"final"`
	Game    *Game  `json:"game"`
}

// streamUI sends every tick to a websocket endpoint.
// Send errors are logged and end the stream, the game itself continues.
type streamUI struct {
	URL     string
	Session string
	UI      UI
	conn    *websocket.Conn
}

func (s *streamUI) Initialise(g *Game) error {
	if s.conn != nil {
		return fmt.Errorf("stream already opened")
	}
	conn, _, err := websocket.DefaultDialer.Dial(s.URL, http.Header{})
	if err != nil {
		return fmt.Errorf("dialing stream %s: %w", s.URL, err)
	}
	s.conn = conn
	if s.UI != nil {
		return s.UI.Initialise(g)
	}
	return nil
}

func (s *streamUI) send(frame StreamFrame) error {
	if s.conn == nil {
		return nil
	}
	b, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, b)
}

func (s *streamUI) NewTick(data TickData) {
	err := s.send(StreamFrame{Session: s.Session, AI: data.AI, Game: data.Game})
	if err != nil {
		log.Println("stream:", err)
		s.conn.Close()
		s.conn = nil
	}

	if s.UI != nil {
		s.UI.NewTick(data)
	}
}

func (s *streamUI) Finish(data TickData) error {
	var err error
	if s.conn != nil {
		err = s.send(StreamFrame{Session: s.Session, AI: data.AI, Final: true, Game: data.Game})
		if err == nil {
			err = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"), time.Now().Add(time.Second))
		}
		closeErr := s.conn.Close()
		if err == nil {
			err = closeErr
		}
		s.conn = nil
	}
	if s.UI != nil {
		newErr := s.UI.Finish(data)
		if newErr != nil && err != nil {
			return fmt.Errorf("two errors: %s, %s", err.Error(), newErr.Error())
		} else if newErr != nil {
			err = newErr
		}
	}
	return err
}

func (s *streamUI) Wait() {
	if s.UI != nil {
		s.UI.Wait()
	}
}
