package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a full deck (52 standard plus two jokers)
const Size = 54

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for _, rank := range []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace} {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	cards = append(cards, NewJoker(Black), NewJoker(Red))

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0 for a time-based seed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != Size || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw removes and returns up to n cards from the top of the deck.
// The top is the end of the sequence. Running out of cards is not an
// error; the caller gets back whatever is left, possibly nothing.
func (d *Deck) Draw(n int) []*Card {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	if n <= 0 {
		return []*Card{}
	}

	at := len(d.Cards) - n
	drawn := make([]*Card, n)
	copy(drawn, d.Cards[at:])
	d.Cards = d.Cards[:at]

	// reverse so the topmost card is first
	for i, j := 0, len(drawn)-1; i < j; i, j = i+1, j-1 {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	}

	return drawn
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
