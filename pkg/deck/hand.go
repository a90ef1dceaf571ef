package deck

// Hand represents an owned collection of cards.
// Cards move between hands (and piles) by removal and re-add, never by copy.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddCards adds the cards to the hand
func (h *Hand) AddCards(cards []*Card) {
	*h = append(*h, cards...)
}

// RemoveAt removes and returns the card at the given index.
// If the index is out of range, nil is returned and the hand is untouched.
func (h *Hand) RemoveAt(index int) *Card {
	if index < 0 || index >= len(*h) {
		return nil
	}

	card := (*h)[index]
	*h = append((*h)[:index], (*h)[index+1:]...)

	return card
}

// Clear removes and returns every card in the hand
func (h *Hand) Clear() []*Card {
	cards := *h
	*h = Hand{}

	return cards
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
