package room

import (
	"errors"

	"github.com/sirupsen/logrus"
	"shithead-server/internal/rng"
	"shithead-server/pkg/shed"
)

// ErrInvalidCardPlay is what clients see when a play is rejected, whatever
// the underlying rule violation was
var ErrInvalidCardPlay = errors.New("Invalid card play")

type inboundMessage struct {
	client  *Client
	payload *PayloadIn
}

// Lobby owns the room registry and serializes every player action.
// Each inbound event is processed to completion on a single run loop, so
// rooms never need their own locking.
type Lobby struct {
	rooms       map[string]*Room
	gameOptions shed.Options
	codeGen     rng.Generator

	connect    chan *Client
	disconnect chan *Client
	inbound    chan inboundMessage
	close      chan bool
}

// NewLobby returns a new lobby
func NewLobby(gameOptions shed.Options) *Lobby {
	return &Lobby{
		rooms:       make(map[string]*Room),
		gameOptions: gameOptions,
		codeGen:     rng.Crypto{},
		connect:     make(chan *Client, 256),
		disconnect:  make(chan *Client, 256),
		inbound:     make(chan inboundMessage, 256),
		close:       make(chan bool),
	}
}

// StartShift starts the lobby run loop
func (l *Lobby) StartShift() {
	go l.runLoop()
}

// EndShift terminates the run loop
func (l *Lobby) EndShift() {
	close(l.close)
}

func (l *Lobby) runLoop() {
	logrus.Debug("creating lobby run loop")
	for {
		select {
		case client := <-l.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
		case client := <-l.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			l.removeFromAllRooms(client)
		case msg := <-l.inbound:
			l.handleMessage(msg.client, msg.payload)
		case <-l.close:
			logrus.Debug("terminating lobby run loop")
			return
		}
	}
}

// ClientConnected is called when a client connects to the server
func (l *Lobby) ClientConnected(client *Client) {
	l.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (l *Lobby) ClientDisconnected(client *Client) {
	l.disconnect <- client
}

// ReceivedMessage is called when a client sends a message to the server
func (l *Lobby) ReceivedMessage(client *Client, payload *PayloadIn) {
	l.inbound <- inboundMessage{client: client, payload: payload}
}

// handleMessage dispatches a single client action.
// Must only be called from the run loop.
func (l *Lobby) handleMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "createRoom":
		l.createRoom(c, msg)
	case "joinRoom":
		l.joinRoom(c, msg)
	case "startGame":
		l.startGame(c, msg)
	case "completeSetup":
		l.completeSetup(c, msg)
	case "playCards":
		l.playCards(c, msg)
	case "pickUpPile":
		l.pickUpPile(c, msg)
	case "leaveRoom":
		l.leaveRoom(c, msg)
	default:
		logrus.WithField("action", msg.Action).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}

func (l *Lobby) createRoom(c *Client, msg *PayloadIn) {
	name, ok := msg.AdditionalData.GetString("displayName")
	if !ok || name == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("displayName is required")))
		return
	}

	room := newRoom(l.newRoomCode())
	l.rooms[room.Code] = room

	c.Name = name
	room.addPlayer(c)

	logrus.WithFields(logrus.Fields{
		"code":   room.Code,
		"client": c.String(),
	}).Info("room created")

	c.Send(&Response{
		Key:     "roomCreated",
		Value:   room.Code,
		Context: msg.Context,
	})
	room.broadcastState()
}

func (l *Lobby) joinRoom(c *Client, msg *PayloadIn) {
	name, ok := msg.AdditionalData.GetString("displayName")
	if !ok || name == "" {
		c.Send(newErrorResponse(msg.Context, errors.New("displayName is required")))
		return
	}

	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	if room.hasPlayer(c.ID) {
		c.Send(newErrorResponse(msg.Context, ErrAlreadyInRoom))
		return
	}

	if room.gameStarted() {
		c.Send(newErrorResponse(msg.Context, ErrGameAlreadyStarted))
		return
	}

	c.Name = name
	room.addPlayer(c)

	c.Send(OK(msg.Context))
	room.broadcastState()
}

func (l *Lobby) startGame(c *Client, msg *PayloadIn) {
	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	if err := room.startGame(c.ID, l.gameOptions); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	logrus.WithField("code", room.Code).Info("game started")

	c.Send(OK(msg.Context))
	room.broadcastState()
}

func (l *Lobby) completeSetup(c *Client, msg *PayloadIn) {
	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	if room.game == nil {
		c.Send(newErrorResponse(msg.Context, ErrGameNotStarted))
		return
	}

	indices, ok := msg.AdditionalData.GetIndexSlice("selectedCards")
	if !ok {
		c.Send(newErrorResponse(msg.Context, errors.New("selectedCards is required")))
		return
	}

	if err := room.game.CompleteSetup(c.ID, indices); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	room.broadcastState()
}

func (l *Lobby) playCards(c *Client, msg *PayloadIn) {
	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	if room.game == nil {
		c.Send(newErrorResponse(msg.Context, ErrGameNotStarted))
		return
	}

	selections, ok := msg.AdditionalData.GetCardSelections("cardIndices")
	if !ok {
		c.Send(newErrorResponse(msg.Context, errors.New("cardIndices is required")))
		return
	}

	if err := room.game.PlayCards(c.ID, selections); err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("rejected play")
		c.Send(newErrorResponse(msg.Context, ErrInvalidCardPlay))
		return
	}

	c.Send(OK(msg.Context))
	room.broadcastState()
}

func (l *Lobby) pickUpPile(c *Client, msg *PayloadIn) {
	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	if room.game == nil {
		c.Send(newErrorResponse(msg.Context, ErrGameNotStarted))
		return
	}

	if err := room.game.PickUpPile(c.ID); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	room.broadcastState()
}

func (l *Lobby) leaveRoom(c *Client, msg *PayloadIn) {
	room, ok := l.room(msg)
	if !ok {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	l.removeFromRoom(room, c)
	c.Send(OK(msg.Context))
}

// removeFromAllRooms handles a disconnect: the client leaves every room
// they are in, and empty rooms are discarded.
func (l *Lobby) removeFromAllRooms(c *Client) {
	for _, room := range l.rooms {
		if room.hasPlayer(c.ID) {
			l.removeFromRoom(room, c)
		}
	}
}

func (l *Lobby) removeFromRoom(room *Room, c *Client) {
	room.removePlayer(c.ID)

	if room.isEmpty() {
		delete(l.rooms, room.Code)
		logrus.WithField("code", room.Code).Info("room discarded")
		return
	}

	room.broadcastState()
}

// room resolves the roomCode in the payload against the registry
func (l *Lobby) room(msg *PayloadIn) (*Room, bool) {
	code, ok := msg.AdditionalData.GetString("roomCode")
	if !ok {
		return nil, false
	}

	room, found := l.rooms[code]
	return room, found
}

// newRoomCode generates a code that isn't in use.
// Only called from the run loop, so the registry check is race-free.
func (l *Lobby) newRoomCode() string {
	for {
		code := generateCode(l.codeGen)
		if _, exists := l.rooms[code]; !exists {
			return code
		}
	}
}
