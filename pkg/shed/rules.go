package shed

import (
	"shithead-server/pkg/deck"
)

// Effect is what a rank does to the game after it's played
type Effect int

// effect constants
const (
	// EffectNone means the play has no side effect
	EffectNone Effect = iota
	// EffectReset is a 2: an always-legal play that restarts the pile values
	EffectReset
	// EffectInvisible is a 3: the card leaves play and the next player sees a value-0 top card
	EffectInvisible
	// EffectBurn is a 10: the pile leaves play and the player goes again
	EffectBurn
	// EffectReverse is a joker: the direction of play flips
	EffectReverse
)

// EffectOf returns the effect for the rank
func EffectOf(rank deck.Rank) Effect {
	switch rank {
	case deck.Two:
		return EffectReset
	case deck.Three:
		return EffectInvisible
	case deck.Ten:
		return EffectBurn
	case deck.Joker:
		return EffectReverse
	}

	return EffectNone
}

// IsWildcard returns true if the rank can be played on any pile
func IsWildcard(rank deck.Rank) bool {
	switch rank {
	case deck.Two, deck.Three, deck.Ten, deck.Joker:
		return true
	}

	return false
}

// IsLegalPlay returns true if the cards may be played on the given top card.
// Only the first card is checked; a multi-card play is a set of equal rank
// and the set's rank decides legality.
func IsLegalPlay(cards []*deck.Card, top *deck.Card) bool {
	if len(cards) == 0 {
		return false
	}

	if top == nil {
		return true
	}

	first := cards[0]
	if IsWildcard(first.Rank) {
		return true
	}

	// a 7 forces the next play to go at or below it
	if top.Rank == deck.Seven {
		return first.Value <= deck.Seven.Value()
	}

	return first.Value >= top.Value
}
