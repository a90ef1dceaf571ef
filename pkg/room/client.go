package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a player connected to the server via websockets.
// Its ID is the player identity everywhere in the game.
type Client struct {
	// ID uniquely identifies the connection
	ID string

	// Name is the display name, assigned when the client creates or joins a room.
	// Only the lobby run loop touches it.
	Name string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan interface{}
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:    uuid.New().String(),
		Conn:  conn,
		Close: make(chan string),
		send:  make(chan interface{}, 256),
	}
}

// Send sends a message to the web client.
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}
