package shed

import (
	"shithead-server/pkg/deck"
)

// Player is a participant in a game of Shithead.
// A player belongs to exactly one room, and the server is the authority on
// every collection here; the client only renders what it's told. Face-down
// contents are included when marshaled since no hiding is done server-side.
type Player struct {
	// ID identifies the player's connection
	ID string `json:"id"`

	// Name is the display name chosen by the player
	Name string `json:"name"`

	Hand     deck.Hand `json:"hand"`
	FaceUp   deck.Hand `json:"faceUpCards"`
	FaceDown deck.Hand `json:"faceDownCards"`

	// SetupComplete is true once the player picked their face-up cards
	SetupComplete bool `json:"setupComplete"`
}

// NewPlayer returns a new player with empty card collections
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Hand:     deck.Hand{},
		FaceUp:   deck.Hand{},
		FaceDown: deck.Hand{},
	}
}

// CardCount returns the total number of cards the player still holds
func (p *Player) CardCount() int {
	return len(p.Hand) + len(p.FaceUp) + len(p.FaceDown)
}

// HasNoCards returns true if the player shed every card. That's a win.
func (p *Player) HasNoCards() bool {
	return p.CardCount() == 0
}

func (p *Player) String() string {
	return p.Name
}

// collection returns the card collection for the given source
func (p *Player) collection(source CardSource) *deck.Hand {
	switch source {
	case SourceHand:
		return &p.Hand
	case SourceFaceUp:
		return &p.FaceUp
	case SourceFaceDown:
		return &p.FaceDown
	}

	return nil
}
