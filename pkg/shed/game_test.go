package shed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shithead-server/pkg/deck"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 1
	return opts
}

// activeGame returns a game past the setup phase
func activeGame(t *testing.T, ids ...string) *Game {
	t.Helper()

	players := make([]*Player, len(ids))
	for i, id := range ids {
		players[i] = NewPlayer(id, id)
	}

	game, err := NewGame(players, testOptions())
	require.NoError(t, err)

	for _, id := range ids {
		require.NoError(t, game.CompleteSetup(id, []int{0, 1, 2}))
	}

	require.False(t, game.InSetupPhase())
	return game
}

// totalCards counts every card the game knows about, wherever it lives
func totalCards(g *Game) int {
	total := g.deck.CardsLeft() + len(g.pile) + len(g.burned)
	if g.invisible != nil {
		total++
	}

	for _, p := range g.players {
		total += p.CardCount()
	}

	return total
}

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(nil, testOptions())
	a.Equal(ErrNotEnoughPlayers, err)
	a.Nil(game)

	game, err = NewGame([]*Player{NewPlayer("a", "Alice")}, testOptions())
	a.Equal(ErrNotEnoughPlayers, err)
	a.Nil(game)

	game, err = NewGame([]*Player{NewPlayer("a", "Alice"), NewPlayer("a", "Alice again")}, testOptions())
	a.EqualError(err, "duplicate player: a")
	a.Nil(game)

	opts := testOptions()
	opts.HandSize = 0
	game, err = NewGame([]*Player{NewPlayer("a", "Alice"), NewPlayer("b", "Bob")}, opts)
	a.EqualError(err, "deal sizes must be greater than 0")
	a.Nil(game)

	game, err = NewGame([]*Player{NewPlayer("a", "Alice"), NewPlayer("b", "Bob")}, testOptions())
	a.NoError(err)
	a.True(game.Started())
	a.True(game.InSetupPhase())
	a.Equal("a", game.CurrentPlayer().ID)

	for _, id := range []string{"a", "b"} {
		p := game.Player(id)
		a.Equal(6, len(p.Hand))
		a.Equal(3, len(p.FaceDown))
		a.Equal(0, len(p.FaceUp))
		a.False(p.SetupComplete)
	}

	a.Equal(deck.Size-18, game.deck.CardsLeft())
	a.Equal(deck.Size, totalCards(game))
}

func TestGame_CompleteSetup(t *testing.T) {
	a := assert.New(t)
	players := []*Player{NewPlayer("a", "Alice"), NewPlayer("b", "Bob")}
	game, err := NewGame(players, testOptions())
	require.NoError(t, err)

	a.Equal(ErrPlayerNotInGame, game.CompleteSetup("x", []int{0, 1, 2}))
	a.EqualError(game.CompleteSetup("a", []int{0, 1}), "you must select exactly 3 cards")
	a.Equal(ErrInvalidSelection, game.CompleteSetup("a", []int{0, 1, 1}))
	a.Equal(ErrInvalidSelection, game.CompleteSetup("a", []int{0, 1, 6}))

	// plays are rejected until everyone is ready
	a.Equal(ErrSetupNotComplete, game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	picked := []*deck.Card{players[0].Hand[1], players[0].Hand[3], players[0].Hand[5]}
	a.NoError(game.CompleteSetup("a", []int{1, 3, 5}))
	a.True(players[0].SetupComplete)
	a.Equal(3, len(players[0].FaceUp))
	a.Equal(3, len(players[0].Hand))
	for _, card := range picked {
		a.True(players[0].FaceUp.HasCard(card))
	}

	a.Equal(ErrSetupAlreadyComplete, game.CompleteSetup("a", []int{0, 1, 2}))
	a.True(game.InSetupPhase())

	a.NoError(game.CompleteSetup("b", []int{0, 1, 2}))
	a.False(game.InSetupPhase())

	// hands are back at three cards
	a.Equal(3, len(players[0].Hand))
	a.Equal(3, len(players[1].Hand))
	a.Equal(deck.Size, totalCards(game))
}

func TestGame_EffectiveTopCard(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")

	game.pile = deck.Hand{}
	a.Nil(game.EffectiveTopCard())
	a.Nil(game.EffectiveTopCard())

	game.pile = deck.Hand(cards("5c,9h"))
	a.Equal(card("9h"), game.EffectiveTopCard())
	a.Equal(game.EffectiveTopCard(), game.EffectiveTopCard())

	game.invisible = card("3d")
	top := game.EffectiveTopCard()
	a.Equal(deck.Three, top.Rank)
	a.Equal(0, top.Value)
	a.Equal(game.EffectiveTopCard(), game.EffectiveTopCard())
}

func TestGame_PlayCards_Validation(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	a.Equal(ErrPlayerNotInGame, game.PlayCards("x", []CardSelection{{SourceHand, 0}}))
	a.Equal(ErrIsNotPlayersTurn, game.PlayCards("b", []CardSelection{{SourceHand, 0}}))
	a.Equal(ErrNoCardsSelected, game.PlayCards("a", nil))

	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{SourceHand, 3}}))
	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{SourceHand, -1}}))
	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{SourceHand, 0}, {SourceHand, 0}}))
	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{"pocket", 0}}))

	// one bad reference fails the whole play
	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{SourceHand, 0}, {SourceHand, 9}}))
	a.Equal(3, len(alice.Hand))

	a.Equal(ErrFaceUpNotPlayable, game.PlayCards("a", []CardSelection{{SourceFaceUp, 0}}))
	a.Equal(ErrFaceDownNotPlayable, game.PlayCards("a", []CardSelection{{SourceFaceDown, 0}}))
	a.Equal(ErrMultipleFaceDownCards, game.PlayCards("a", []CardSelection{{SourceFaceDown, 0}, {SourceFaceDown, 1}}))

	// a regular play can't smuggle in a blind card
	a.Equal(ErrInvalidSelection, game.PlayCards("a", []CardSelection{{SourceHand, 0}, {SourceFaceDown, 0}}))

	// an illegal play leaves everything untouched
	game.pile = deck.Hand(cards("Ah"))
	alice.Hand = deck.Hand(cards("4c,5c,6c"))
	a.Equal(ErrIllegalPlay, game.PlayCards("a", []CardSelection{{SourceHand, 0}}))
	a.Equal("4c,5c,6c", alice.Hand.String())
	a.Equal("Ah", game.pile.String())
	a.Equal("a", game.CurrentPlayer().ID)
}

func TestGame_PlayCards_SetOfEqualRank(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	game.pile = deck.Hand(cards("8s"))
	alice.Hand = deck.Hand(cards("9c,9d,9h"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}, {SourceHand, 1}, {SourceHand, 2}}))
	a.Equal("8s,9c,9d,9h", game.pile.String())

	// hand is refilled from the deck after the play
	a.Equal(3, len(alice.Hand))
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_JokerReversesDirection(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b", "c")
	game.Player("a").Hand = deck.Hand{deck.NewJoker(deck.Black), card("4c"), card("5c")}

	a.Equal(1, game.direction)
	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	a.Equal(-1, game.direction)
	a.Equal("c", game.CurrentPlayer().ID)

	// direction sticks for subsequent turns
	game.Player("c").Hand = deck.Hand(cards("2d,4d,5d"))
	a.NoError(game.PlayCards("c", []CardSelection{{SourceHand, 0}}))
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_BurnKeepsTheTurn(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")

	game.pile = deck.Hand(cards("5s,9h"))
	game.invisible = card("3d")
	game.Player("a").Hand = deck.Hand(cards("10c,4c,5c"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	a.Equal(0, len(game.pile))
	a.Nil(game.invisible)
	a.Equal("a", game.CurrentPlayer().ID)

	// the 5♠, 9♡, 10♣, and spent 3♢ are all out of play
	a.Equal(4, len(game.burned))
}

func TestGame_TwoResetsWithoutClearing(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")

	game.pile = deck.Hand(cards("Kh,Ad"))
	game.Player("a").Hand = deck.Hand(cards("2c,4c,5c"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	// the pile is not cleared; the 2 just sits on top as an open start
	a.Equal("Kh,Ad,2c", game.pile.String())
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_InvisibleThree(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	three := card("3d")
	game.pile = deck.Hand(cards("9h"))
	game.Player("a").Hand = deck.Hand{three, card("4c"), card("5c")}
	game.Player("b").Hand = deck.Hand(cards("4s,6s,8s"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	// the 3 never lands on the pile
	a.Equal("9h", game.pile.String())
	a.True(game.invisible == three)
	a.Equal("b", game.CurrentPlayer().ID)

	// the next player plays against value 0, so a 4 beats the lurking 9
	a.Equal(0, game.EffectiveTopCard().Value)
	a.NoError(game.PlayCards("b", []CardSelection{{SourceHand, 0}}))

	a.Equal("9h,4s", game.pile.String())
	a.Nil(game.invisible)
	a.True(game.burned.HasCard(three))
}

func TestGame_BlindPlayFailure(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	game.pile = deck.Hand(cards("5c,Jc"))
	alice.Hand = deck.Hand{}
	alice.FaceUp = deck.Hand{}
	alice.FaceDown = deck.Hand(cards("4s"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceFaceDown, 0}}))

	// the flip failed: the 4♠ and the whole pile land in the hand
	a.Equal(0, len(game.pile))
	a.Equal(0, len(alice.FaceDown))
	a.Equal(3, len(alice.Hand))
	a.True(alice.Hand.HasCard(card("4s")))
	a.True(alice.Hand.HasCard(card("Jc")))
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_BlindPlaySuccess(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	game.pile = deck.Hand(cards("9h"))
	alice.Hand = deck.Hand{}
	alice.FaceUp = deck.Hand{}
	alice.FaceDown = deck.Hand(cards("As"))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceFaceDown, 0}}))

	a.Equal("9h,As", game.pile.String())
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_FaceUpPlay(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	game.pile = deck.Hand(cards("9h"))
	alice.Hand = deck.Hand{}
	alice.FaceUp = deck.Hand(cards("Qs,4d,6h"))
	game.deck.Draw(game.deck.CardsLeft())

	a.NoError(game.PlayCards("a", []CardSelection{{SourceFaceUp, 0}}))
	a.Equal("9h,Qs", game.pile.String())
	a.Equal("4d,6h", alice.FaceUp.String())
}

func TestGame_PickUpPile(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	a.Equal(ErrIsNotPlayersTurn, game.PickUpPile("b"))
	a.Equal(ErrPlayerNotInGame, game.PickUpPile("x"))
	a.Equal(ErrPileIsEmpty, game.PickUpPile("a"))

	game.pile = deck.Hand(cards("5c,6c"))
	game.invisible = card("3d")
	alice.Hand = deck.Hand(cards("4h"))

	a.NoError(game.PickUpPile("a"))
	a.Equal("4h,5c,6c,3d", alice.Hand.String())
	a.Equal(0, len(game.pile))
	a.Nil(game.invisible)
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_Win(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b")
	alice := game.Player("a")

	game.pile = deck.Hand{}
	alice.Hand = deck.Hand(cards("4c"))
	alice.FaceUp = deck.Hand{}
	alice.FaceDown = deck.Hand{}
	game.burned.AddCards(game.deck.Draw(game.deck.CardsLeft()))

	a.NoError(game.PlayCards("a", []CardSelection{{SourceHand, 0}}))

	a.True(alice.HasNoCards())
	a.False(game.Started())

	// the turn pointer froze on the winner
	a.Equal("a", game.CurrentPlayer().ID)

	// no further actions are processed
	a.Equal(ErrGameNotActive, game.PlayCards("b", []CardSelection{{SourceHand, 0}}))
	a.Equal(ErrGameNotActive, game.PickUpPile("b"))
}

func TestGame_RemovePlayer(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b", "c")
	before := totalCards(game)

	// removing the turn holder hands the turn to the next player
	game.RemovePlayer("a")
	a.Equal([]string{"b", "c"}, game.order)
	a.Equal("b", game.CurrentPlayer().ID)
	a.Nil(game.Player("a"))
	a.Equal(before, totalCards(game))

	// unknown ids are a no-op
	game.RemovePlayer("a")
	a.Equal([]string{"b", "c"}, game.order)

	// one player left ends the game in their favor
	game.RemovePlayer("c")
	a.False(game.Started())
	a.Equal("b", game.CurrentPlayer().ID)
}

func TestGame_RemovePlayer_IndexAdjusts(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b", "c")

	// advance the turn to c
	game.nextTurn()
	game.nextTurn()
	a.Equal("c", game.CurrentPlayer().ID)

	// removing someone earlier in the order keeps the turn with c
	game.RemovePlayer("a")
	a.Equal("c", game.CurrentPlayer().ID)
}

func TestGame_RemovePlayer_FinishesSetup(t *testing.T) {
	a := assert.New(t)
	players := []*Player{NewPlayer("a", "a"), NewPlayer("b", "b"), NewPlayer("c", "c")}
	game, err := NewGame(players, testOptions())
	require.NoError(t, err)

	a.NoError(game.CompleteSetup("a", []int{0, 1, 2}))
	a.NoError(game.CompleteSetup("b", []int{0, 1, 2}))
	a.True(game.InSetupPhase())

	// the last holdout leaving unblocks the game
	game.RemovePlayer("c")
	a.False(game.InSetupPhase())
	a.True(game.Started())
}

// TestGame_CardConservation drives a full random game and verifies that no
// card is ever created or destroyed.
func TestGame_CardConservation(t *testing.T) {
	a := assert.New(t)
	game := activeGame(t, "a", "b", "c", "d")
	a.Equal(deck.Size, totalCards(game))

	for i := 0; i < 500 && game.Started(); i++ {
		player := game.CurrentPlayer()
		if !playSomething(t, game, player) {
			require.NoError(t, game.PickUpPile(player.ID))
		}

		require.Equal(t, deck.Size, totalCards(game), "after action %d", i)
	}
}

// playSomething plays the first legal card available, or a blind card if
// that's all that's left. Returns false if the player must pick up.
func playSomething(t *testing.T, game *Game, player *Player) bool {
	t.Helper()
	top := game.EffectiveTopCard()

	for i, c := range player.Hand {
		if IsLegalPlay([]*deck.Card{c}, top) {
			require.NoError(t, game.PlayCards(player.ID, []CardSelection{{SourceHand, i}}))
			return true
		}
	}

	if len(player.Hand) > 0 {
		return false
	}

	for i, c := range player.FaceUp {
		if IsLegalPlay([]*deck.Card{c}, top) {
			require.NoError(t, game.PlayCards(player.ID, []CardSelection{{SourceFaceUp, i}}))
			return true
		}
	}

	if len(player.FaceUp) > 0 {
		return false
	}

	if len(player.FaceDown) > 0 {
		// blind plays always resolve, one way or the other
		require.NoError(t, game.PlayCards(player.ID, []CardSelection{{SourceFaceDown, 0}}))
		return true
	}

	return false
}
