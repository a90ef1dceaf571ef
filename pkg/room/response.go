package room

import (
	"shithead-server/pkg/deck"
	"shithead-server/pkg/shed"
)

// Response is an outgoing message for a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// gameStateUpdate is broadcast to every room member after a successful mutation
type gameStateUpdate struct {
	RoomCode string         `json:"roomCode"`
	Players  []*shed.Player `json:"players"`

	// GameState is nil while the room is still in the lobby
	GameState *shed.State `json:"gameState"`

	// IsHost is per recipient
	IsHost bool `json:"isHost"`

	EffectiveTopCard *deck.Card `json:"effectiveTopCard"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
