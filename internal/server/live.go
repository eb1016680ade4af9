package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rigmonitor/internal/simulation"
)

const liveWriteWait = 10 * time.Second

// liveFeed streams fresh category snapshots to dashboard clients over a
// websocket. Every connection generates its own snapshots.
type liveFeed struct {
	generator *simulation.Generator
	interval  time.Duration
	upgrader  websocket.Upgrader
}

func newLiveFeed(gen *simulation.Generator, interval time.Duration) *liveFeed {
	if interval <= 0 {
		interval = simulation.DefaultRefreshInterval
	}
	return &liveFeed{
		generator: gen,
		interval:  interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and pushes a snapshot every interval until
// the client disconnects or a write fails.
func (f *liveFeed) Serve(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := f.push(conn); err != nil {
		return
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			if err := f.push(conn); err != nil {
				return
			}
		}
	}
}

func (f *liveFeed) push(conn *websocket.Conn) error {
	if err := conn.SetWriteDeadline(time.Now().Add(liveWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(gin.H{
		"generatedAt": time.Now().UTC(),
		"readings":    f.generator.Snapshot(),
	})
}
