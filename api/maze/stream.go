package mazeapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-maze3d/maze"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	streamDoneType = "DONE"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// stream generates a maze while sending every event over a websocket, then a
// StreamDone message, then closes.
func (c *Controller) stream(ctx *gin.Context) {
	var query StreamQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := c.resolve(query.Config())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Upgrading stream connection: %v", err))
		return
	}
	defer conn.Close()

	w := &eventWriter{conn: conn}
	record, err := c.mazes.Generate(cfg, w)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Streaming maze: %v", err))
		closeStream(conn, websocket.CloseInternalServerErr, "generation failed")
		return
	}
	if w.err != nil {
		c.logger.Warn(fmt.Sprintf("Stream of maze %s cut off after %d events: %v", record.ID, w.sent, w.err))
		return
	}

	done := &StreamDone{
		Type:         streamDoneType,
		ID:           record.ID,
		Seed:         record.Seed,
		Goal:         record.Goal,
		GoalDistance: record.GoalDistance,
	}
	if err := w.write(done); err != nil {
		c.logger.Warn(fmt.Sprintf("Finishing stream of maze %s: %v", record.ID, err))
		return
	}
	closeStream(conn, websocket.CloseNormalClosure, "")
	c.logger.Info(fmt.Sprintf("Streamed maze %s (%d events)", record.ID, w.sent))
}

// eventWriter sends generation events as JSON messages. After the first write
// error it drops the remaining events.
type eventWriter struct {
	conn *websocket.Conn
	sent int
	err  error
}

var _ maze.Listener = &eventWriter{}

func (w *eventWriter) CellVisited(pos maze.Position) {
	w.send(maze.Event{Type: maze.EventCellVisited, Cell: &pos})
}

func (w *eventWriter) WallOpened(wall maze.Wall) {
	w.send(maze.Event{Type: maze.EventWallOpened, Wall: &wall})
}

func (w *eventWriter) GoalPlaced(pos maze.Position, distance int) {
	w.send(maze.Event{Type: maze.EventGoalPlaced, Cell: &pos, Distance: distance})
}

func (w *eventWriter) send(e maze.Event) {
	if w.err != nil {
		return
	}
	if err := w.write(e); err != nil {
		w.err = err
		return
	}
	w.sent++
}

func (w *eventWriter) write(v any) error {
	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return w.conn.WriteJSON(v)
}

func closeStream(conn *websocket.Conn, code int, text string) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, text))
}
