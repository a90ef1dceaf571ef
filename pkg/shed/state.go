package shed

import (
	"shithead-server/pkg/deck"
)

// State is a broadcast-ready snapshot of the game.
// Everything in here goes to every player; the server does not hide
// information from clients.
type State struct {
	Started            bool          `json:"started"`
	SetupPhase         bool          `json:"setupPhase"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	PlayerOrder        []string      `json:"playerOrder"`
	Direction          int           `json:"direction"`
	DiscardPile        []*deck.Card  `json:"discardPile"`
	DeckCount          int           `json:"deckCount"`
	BurnedCount        int           `json:"burnedCount"`
	InvisibleCard      *deck.Card    `json:"invisibleCard"`
	GameLog            []*LogMessage `json:"gameLog"`
}

// State returns the current snapshot
func (g *Game) State() *State {
	order := make([]string, len(g.order))
	copy(order, g.order)

	return &State{
		Started:            g.started,
		SetupPhase:         g.setupPhase,
		CurrentPlayerIndex: g.currentIdx,
		PlayerOrder:        order,
		Direction:          g.direction,
		DiscardPile:        g.pile.Clone(),
		DeckCount:          g.deck.CardsLeft(),
		BurnedCount:        len(g.burned),
		InvisibleCard:      g.invisible,
		GameLog:            g.log,
	}
}
