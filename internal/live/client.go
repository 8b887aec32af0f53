package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
	sendBuffer = 256
)

// clientSendable lists the message types a viewer may push upstream. The
// rest of the protocol is server-originated; a client emitting one of
// those is either broken or probing the hub.
var clientSendable = map[string]bool{
	TypePresenceUpdate: true,
	TypeStateUpdate:    true,
	TypeDocSaved:       true,
}

// Client is one websocket viewer of a board. Identity comes from the
// authenticated connection, never from the wire.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan *Message
	log  *slog.Logger

	UserID      string
	DisplayName string
	BoardID     string
	ClientID    string

	// Highest Seq accepted on this connection; stale updates are dropped
	// so the last-write-wins feed never moves backwards.
	lastSeq int64
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, displayName, boardID, clientID string) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan *Message, sendBuffer),
		log:         slog.With("user", userID, "board", boardID, "client", clientID),
		UserID:      userID,
		DisplayName: displayName,
		BoardID:     boardID,
		ClientID:    clientID,
	}
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			c.log.Debug("read error", "error", err)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("invalid message", "error", err)
			continue
		}
		if !c.accept(&msg) {
			continue
		}

		c.hub.handleMessage(c, &msg)
	}
}

// accept decides whether an inbound message is forwarded to the hub,
// stamping the connection's identity onto it. Server-only types and
// out-of-order sequence numbers are dropped.
func (c *Client) accept(msg *Message) bool {
	if !clientSendable[msg.Type] {
		c.log.Warn("rejected message type", "type", msg.Type)
		return false
	}
	if msg.Seq != 0 {
		if msg.Seq <= c.lastSeq {
			c.log.Debug("dropping stale message", "type", msg.Type, "seq", msg.Seq)
			return false
		}
		c.lastSeq = msg.Seq
	}

	msg.UserID = c.UserID
	msg.ClientID = c.ClientID
	msg.BoardID = c.BoardID
	return true
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				c.log.Error("marshal message", "error", err)
				continue
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err = c.conn.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				c.log.Debug("write error", "error", err)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// Send queues msg for delivery, dropping it when the viewer cannot keep
// up. Presence and state traffic is refreshed continuously, so a dropped
// message is recovered by the next update.
func (c *Client) Send(msg *Message) {
	select {
	case c.send <- msg:
	default:
		c.log.Warn("send buffer full, dropping message", "type", msg.Type)
	}
}
