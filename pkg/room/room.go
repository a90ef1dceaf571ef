package room

import (
	"errors"

	"shithead-server/pkg/deck"
	"shithead-server/pkg/shed"
)

// ErrRoomNotFound is the error for an unknown room code
var ErrRoomNotFound = errors.New("Room not found")

// ErrGameAlreadyStarted happens when joining or starting a room with a running game
var ErrGameAlreadyStarted = errors.New("Game already started")

// ErrNotHost happens when a non-host tries a host-only action
var ErrNotHost = errors.New("Only the host can start the game")

// ErrGameNotStarted happens when a game action arrives before the game exists
var ErrGameNotStarted = errors.New("Game has not started")

// ErrAlreadyInRoom happens when a client joins a room twice
var ErrAlreadyInRoom = errors.New("You are already in this room")

// Room is a group of players identified by a join code.
// The first player is the host. A room only ever lives inside the lobby's
// registry and is mutated exclusively from the lobby run loop.
type Room struct {
	// Code is the unique join code
	Code string

	// HostID is the player allowed to start the game
	HostID string

	players []*shed.Player
	clients map[string]*Client
	game    *shed.Game
}

func newRoom(code string) *Room {
	return &Room{
		Code:    code,
		clients: make(map[string]*Client),
	}
}

// addPlayer registers the client as a player. The first player becomes host.
func (r *Room) addPlayer(client *Client) *shed.Player {
	player := shed.NewPlayer(client.ID, client.Name)
	r.players = append(r.players, player)
	r.clients[client.ID] = client

	if len(r.players) == 1 {
		r.HostID = client.ID
	}

	return player
}

// removePlayer takes the player out of the room (and the running game).
// The host role moves to the oldest remaining player if the host left.
func (r *Room) removePlayer(id string) {
	if _, ok := r.clients[id]; !ok {
		return
	}

	delete(r.clients, id)
	for i, player := range r.players {
		if player.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}

	if r.game != nil {
		r.game.RemovePlayer(id)
	}

	if r.HostID == id && len(r.players) > 0 {
		r.HostID = r.players[0].ID
	}
}

// hasPlayer returns true if the player is in the room
func (r *Room) hasPlayer(id string) bool {
	_, ok := r.clients[id]
	return ok
}

// isEmpty returns true once the last player left
func (r *Room) isEmpty() bool {
	return len(r.players) == 0
}

// isHost returns true if the player is the room's host
func (r *Room) isHost(id string) bool {
	return r.HostID == id
}

// gameStarted returns true while a game is running
func (r *Room) gameStarted() bool {
	return r.game != nil && r.game.Started()
}

// startGame deals a new game. Host only, and never over a running game.
func (r *Room) startGame(actorID string, options shed.Options) error {
	if !r.isHost(actorID) {
		return ErrNotHost
	}

	if r.gameStarted() {
		return ErrGameAlreadyStarted
	}

	game, err := shed.NewGame(r.players, options)
	if err != nil {
		return err
	}

	r.game = game
	return nil
}

// broadcastState sends the full room snapshot to every member.
// No information is hidden; clients see face-down cards too.
func (r *Room) broadcastState() {
	var state *shed.State
	var top *deck.Card
	if r.game != nil {
		state = r.game.State()
		top = r.game.EffectiveTopCard()
	}

	for _, client := range r.clients {
		update := &gameStateUpdate{
			RoomCode:         r.Code,
			Players:          r.players,
			GameState:        state,
			IsHost:           r.isHost(client.ID),
			EffectiveTopCard: top,
		}

		client.Send(&Response{
			Key:  "gameStateUpdate",
			Data: update,
		})
	}
}
