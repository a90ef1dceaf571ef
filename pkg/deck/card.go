package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"

	// NoSuit is the suit of a joker
	NoSuit Suit = ""
)

// Color is the color of a card
type Color string

// color constants
const (
	Black Color = "black"
	Red   Color = "red"
)

// Rank is the printed rank of a card
type Rank string

// rank constants
const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
	Joker Rank = "JOKER"
)

// Card is an individual playing card.
// A card must not be mutated after it's created.
type Card struct {
	Rank  Rank  `json:"rank"`
	Suit  Suit  `json:"suit"`
	Value int   `json:"value"`
	Color Color `json:"color"`
}

// three is the lowest card in the game. Anything can be played on top of it.
var rankValues = map[Rank]int{
	Three: 0,
	Two:   2,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
	Joker: 15,
}

// Value returns the play value for the rank
func (r Rank) Value() int {
	value, ok := rankValues[r]
	if !ok {
		panic(fmt.Sprintf("unknown rank: %s", r))
	}

	return value
}

// NewCard returns a new standard (non-joker) card
func NewCard(rank Rank, suit Suit) *Card {
	if rank == Joker {
		panic("jokers must be created with NewJoker")
	}

	color := Black
	if suit == Hearts || suit == Diamonds {
		color = Red
	}

	return &Card{
		Rank:  rank,
		Suit:  suit,
		Value: rank.Value(),
		Color: color,
	}
}

// NewJoker returns a joker of the specified color
func NewJoker(color Color) *Card {
	return &Card{
		Rank:  Joker,
		Suit:  NoSuit,
		Value: Joker.Value(),
		Color: color,
	}
}

func (c *Card) String() string {
	if c.Rank == Joker {
		return fmt.Sprintf("JOKER(%s)", c.Color)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", c.Rank, suit)
}

// Equal returns true if the cards are equal (matches suit, rank, and color)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank && c.Color == card.Color
}

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9]|[jqka])([cdhs])\z`)
var jokerRx = regexp.MustCompile(`(?i)^joker([br])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is in
// 2–10, J, Q, K, A and suit is in [cdhs]. Jokers are "jokerb" and "jokerr".
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	if match := jokerRx.FindStringSubmatch(s); match != nil {
		color := Black
		if strings.ToLower(match[1]) == "r" {
			color = Red
		}

		return NewJoker(color)
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank := Rank(strings.ToUpper(match[1]))

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	if card.Rank == Joker {
		if card.Color == Red {
			return "jokerr"
		}

		return "jokerb"
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%s%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
