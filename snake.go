package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/snake"
)

const (
	snakeSendBuffer = 8
	writeWait       = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// clientMessage is what the snake page sends over the socket:
// {"type":"key","key":"ArrowUp"} or {"type":"reset"}.
type clientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

func (s *server) setupSnakeRoutes(r *gin.Engine) {
	r.GET("/snake", func(c *gin.Context) {
		lang := s.language(c)
		c.HTML(http.StatusOK, "snake.html", gin.H{
			"lang":  lang,
			"t":     cv.Strings(lang),
			"size":  snake.GridSize,
			"cells": make([]struct{}, snake.GridSize*snake.GridSize),
		})
	})

	r.GET("/snake/ws", s.handleSnakeSocket)
}

// handleSnakeSocket runs one private game per connection until either side
// goes away.
func (s *server) handleSnakeSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Snake upgrade failed: %v", err)
		return
	}

	id := uuid.NewString()
	log.Printf("Snake session %s started from %s", id, s.hashIP(c.ClientIP()))

	send := make(chan []byte, snakeSendBuffer)
	runner := snake.NewRunner(snake.New(s.cfg.Snake, nil), func(snap snake.Snapshot) {
		b, err := json.Marshal(snap)
		if err != nil {
			log.Printf("Snake session %s: encode snapshot: %v", id, err)
			return
		}
		// A slow client misses frames rather than stalling the tick.
		select {
		case send <- b:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		defer close(send)
		runner.Run(ctx)
	}()
	go writeSnapshots(conn, send)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "key":
			if d, ok := snake.ParseKey(msg.Key); ok {
				runner.SetHeading(d)
			}
		case "reset":
			runner.Reset()
		}
	}

	cancel()
	<-runDone
	final := runner.Snapshot()
	log.Printf("Snake session %s closed: score %d, level %d", id, final.Score, final.Level)
}

// writeSnapshots drains send onto conn. On a write error it closes the
// connection, which unblocks the reader, and keeps draining until send closes.
func writeSnapshots(conn *websocket.Conn, send <-chan []byte) {
	defer conn.Close()
	for msg := range send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			for range send {
			}
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
