package shed

import (
	"fmt"
	"sort"

	"shithead-server/pkg/deck"
)

// CardSource is where a played card comes from
type CardSource string

// card source constants
const (
	SourceHand     CardSource = "hand"
	SourceFaceUp   CardSource = "faceUp"
	SourceFaceDown CardSource = "faceDown"
)

// CardSelection identifies a single card in one of the player's collections
type CardSelection struct {
	Source CardSource `json:"type"`
	Index  int        `json:"index"`
}

// Options configures a game of Shithead
type Options struct {
	// HandSize is the number of cards dealt to each hand
	HandSize int

	// FaceDownSize is the number of blind cards dealt in front of each player
	FaceDownSize int

	// FaceUpSize is the number of cards each player picks from their hand during setup
	FaceUpSize int

	// RefillSize is the hand size players draw back up to while the deck lasts
	RefillSize int

	// Seed seeds the shuffle. Leave as 0 outside of tests.
	Seed int64
}

// DefaultOptions returns the standard Shithead deal
func DefaultOptions() Options {
	return Options{
		HandSize:     6,
		FaceDownSize: 3,
		FaceUpSize:   3,
		RefillSize:   3,
	}
}

// Game is a single game of Shithead.
// All methods must be called from one goroutine; the room run loop
// serializes every action before it reaches the game.
type Game struct {
	options Options

	players    map[string]*Player
	order      []string
	deck       *deck.Deck
	pile       deck.Hand
	burned     deck.Hand
	invisible  *deck.Card
	currentIdx int
	direction  int
	started    bool
	setupPhase bool
	log        []*LogMessage
}

// NewGame deals a new game for the players.
// The players keep their join order; that order is fixed for the duration
// of the game except for departures.
func NewGame(players []*Player, options Options) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if options.HandSize <= 0 || options.FaceDownSize <= 0 || options.FaceUpSize <= 0 || options.RefillSize <= 0 {
		return nil, fmt.Errorf("deal sizes must be greater than 0")
	}

	if options.FaceUpSize > options.HandSize {
		return nil, fmt.Errorf("cannot pick %d face-up cards from a hand of %d", options.FaceUpSize, options.HandSize)
	}

	perPlayer := options.HandSize + options.FaceDownSize
	if perPlayer*len(players) > deck.Size {
		return nil, fmt.Errorf("cannot deal %d cards each to %d players", perPlayer, len(players))
	}

	d := deck.New()
	d.Shuffle(options.Seed)

	byID := make(map[string]*Player, len(players))
	order := make([]string, len(players))
	for i, player := range players {
		if _, exists := byID[player.ID]; exists {
			return nil, fmt.Errorf("duplicate player: %s", player.ID)
		}

		byID[player.ID] = player
		order[i] = player.ID

		player.FaceDown = deck.Hand(d.Draw(options.FaceDownSize))
		player.Hand = deck.Hand(d.Draw(options.HandSize))
		player.FaceUp = deck.Hand{}
		player.SetupComplete = false
	}

	g := &Game{
		options:    options,
		players:    byID,
		order:      order,
		deck:       d,
		pile:       deck.Hand{},
		burned:     deck.Hand{},
		currentIdx: 0,
		direction:  1,
		started:    true,
		setupPhase: true,
	}

	g.logf("the game has started, pick your face-up cards")
	return g, nil
}

// Started returns true while the game is running
func (g *Game) Started() bool {
	return g.started
}

// InSetupPhase returns true until every player picked their face-up cards
func (g *Game) InSetupPhase() bool {
	return g.setupPhase
}

// CurrentPlayer returns the player whose turn it is, or nil if nobody is left
func (g *Game) CurrentPlayer() *Player {
	if len(g.order) == 0 {
		return nil
	}

	return g.players[g.order[g.currentIdx]]
}

// Player returns the player by ID, or nil
func (g *Game) Player(id string) *Player {
	return g.players[id]
}

// EffectiveTopCard returns the card the next play must beat.
// A pending invisible 3 takes the place of the real top card so the next
// player plays against value 0. Without one, it's the literal pile top, or
// nil for an empty pile.
func (g *Game) EffectiveTopCard() *deck.Card {
	if g.invisible != nil {
		return g.invisible
	}

	return g.pile.LastCard()
}

// CompleteSetup moves the chosen hand cards face up for the player.
// Once every player completed their pick, hands are refilled and regular
// play begins.
func (g *Game) CompleteSetup(playerID string, indices []int) error {
	if !g.started {
		return ErrGameNotActive
	}

	if !g.setupPhase {
		return ErrSetupNotComplete
	}

	player, ok := g.players[playerID]
	if !ok {
		return ErrPlayerNotInGame
	}

	if player.SetupComplete {
		return ErrSetupAlreadyComplete
	}

	if len(indices) != g.options.FaceUpSize {
		return fmt.Errorf("you must select exactly %d cards", g.options.FaceUpSize)
	}

	seen := make(map[int]bool, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(player.Hand) || seen[index] {
			return ErrInvalidSelection
		}

		seen[index] = true
	}

	// remove highest index first so the earlier picks keep their positions
	sorted := append([]int{}, indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, index := range sorted {
		player.FaceUp.AddCard(player.Hand.RemoveAt(index))
	}

	player.SetupComplete = true
	g.logPlayer(player, nil, "%s picked their face-up cards", player.Name)

	g.maybeFinishSetup()
	return nil
}

// maybeFinishSetup ends the setup phase once every player is done
func (g *Game) maybeFinishSetup() {
	if !g.setupPhase {
		return
	}

	for _, id := range g.order {
		if !g.players[id].SetupComplete {
			return
		}
	}

	for _, id := range g.order {
		g.refillHand(g.players[id])
	}

	g.setupPhase = false
	g.logf("all players are ready, %s goes first", g.CurrentPlayer().Name)
}

// PlayCards plays an ordered selection of the player's cards.
// An illegal or unresolvable selection fails without changing any state.
// A face-down selection is a blind play: it is revealed after the attempt
// and a failed reveal costs the player the card and the whole pile.
func (g *Game) PlayCards(playerID string, selections []CardSelection) error {
	if !g.started {
		return ErrGameNotActive
	}

	if g.setupPhase {
		return ErrSetupNotComplete
	}

	player, ok := g.players[playerID]
	if !ok {
		return ErrPlayerNotInGame
	}

	if g.CurrentPlayer() != player {
		return ErrIsNotPlayersTurn
	}

	if len(selections) == 0 {
		return ErrNoCardsSelected
	}

	if selections[0].Source == SourceFaceDown {
		return g.playBlind(player, selections)
	}

	cards, err := g.resolveSelections(player, selections)
	if err != nil {
		return err
	}

	if !IsLegalPlay(cards, g.EffectiveTopCard()) {
		return ErrIllegalPlay
	}

	g.removeSelections(player, selections)
	g.logPlayer(player, cards, "%s plays %s", player.Name, deck.CardsToString(cards))
	g.finishPlay(player, cards)

	return nil
}

// playBlind handles a face-down play. The card is committed before its
// legality is known.
func (g *Game) playBlind(player *Player, selections []CardSelection) error {
	if len(selections) != 1 {
		return ErrMultipleFaceDownCards
	}

	if len(player.Hand) > 0 || len(player.FaceUp) > 0 {
		return ErrFaceDownNotPlayable
	}

	index := selections[0].Index
	if index < 0 || index >= len(player.FaceDown) {
		return ErrInvalidSelection
	}

	card := player.FaceDown.RemoveAt(index)
	top := g.EffectiveTopCard()
	if IsLegalPlay([]*deck.Card{card}, top) {
		g.logPlayer(player, []*deck.Card{card}, "%s flips %s from face down", player.Name, card)
		g.finishPlay(player, []*deck.Card{card})
		return nil
	}

	// the reveal failed: the card and the whole pile go to the hand,
	// and the turn is forfeit
	g.logPlayer(player, []*deck.Card{card}, "%s flips %s and must pick up the pile", player.Name, card)
	player.Hand.AddCard(card)
	player.Hand.AddCards(g.pile.Clear())
	if g.invisible != nil {
		player.Hand.AddCard(g.invisible)
		g.invisible = nil
	}

	g.nextTurn()
	return nil
}

// resolveSelections maps the selections to cards without removing anything.
// Every reference must resolve; a play never silently shrinks.
func (g *Game) resolveSelections(player *Player, selections []CardSelection) ([]*deck.Card, error) {
	cards := make([]*deck.Card, len(selections))
	seen := make(map[CardSelection]bool, len(selections))

	for i, selection := range selections {
		if selection.Source == SourceFaceDown {
			// blind cards can't ride along in a regular play
			return nil, ErrInvalidSelection
		}

		if selection.Source == SourceFaceUp && len(player.Hand) > 0 {
			return nil, ErrFaceUpNotPlayable
		}

		collection := player.collection(selection.Source)
		if collection == nil || selection.Index < 0 || selection.Index >= len(*collection) {
			return nil, ErrInvalidSelection
		}

		if seen[selection] {
			return nil, ErrInvalidSelection
		}
		seen[selection] = true

		cards[i] = (*collection)[selection.Index]
	}

	return cards, nil
}

// removeSelections removes the selected cards from their collections.
// Must only be called with selections validated by resolveSelections.
func (g *Game) removeSelections(player *Player, selections []CardSelection) {
	bySource := make(map[CardSource][]int)
	for _, selection := range selections {
		bySource[selection.Source] = append(bySource[selection.Source], selection.Index)
	}

	for source, indices := range bySource {
		sort.Sort(sort.Reverse(sort.IntSlice(indices)))
		collection := player.collection(source)
		for _, index := range indices {
			collection.RemoveAt(index)
		}
	}
}

// finishPlay places the cards, applies the effect of the last one, refills
// the hand, and either ends the game, keeps the turn, or advances it.
func (g *Game) finishPlay(player *Player, cards []*deck.Card) {
	// a pending invisible card only ever constrains this one play
	g.retireInvisible()

	for _, card := range cards {
		if card.Rank == deck.Three {
			// never enters the pile
			g.retireInvisible()
			g.invisible = card
			continue
		}

		g.pile.AddCard(card)
	}

	advance := true
	last := cards[len(cards)-1]
	switch EffectOf(last.Rank) {
	case EffectBurn:
		g.burned.AddCards(g.pile.Clear())
		g.retireInvisible()
		g.logPlayer(player, nil, "%s burns the pile and goes again", player.Name)
		advance = false
	case EffectReset:
		g.logPlayer(player, nil, "%s resets the pile", player.Name)
	case EffectReverse:
		g.direction = -g.direction
		g.logPlayer(player, nil, "%s reverses the direction of play", player.Name)
	case EffectInvisible:
		g.logPlayer(player, nil, "%s plays an invisible card", player.Name)
	}

	g.refillHand(player)

	if player.HasNoCards() {
		g.started = false
		g.logPlayer(player, nil, "%s wins the game!", player.Name)
		return
	}

	if advance {
		g.nextTurn()
	}
}

// retireInvisible takes a spent invisible card out of play
func (g *Game) retireInvisible() {
	if g.invisible != nil {
		g.burned.AddCard(g.invisible)
		g.invisible = nil
	}
}

// PickUpPile transfers the pile and any pending invisible card into the
// player's hand and forfeits the turn.
func (g *Game) PickUpPile(playerID string) error {
	if !g.started {
		return ErrGameNotActive
	}

	if g.setupPhase {
		return ErrSetupNotComplete
	}

	player, ok := g.players[playerID]
	if !ok {
		return ErrPlayerNotInGame
	}

	if g.CurrentPlayer() != player {
		return ErrIsNotPlayersTurn
	}

	if len(g.pile) == 0 && g.invisible == nil {
		return ErrPileIsEmpty
	}

	count := len(g.pile)
	player.Hand.AddCards(g.pile.Clear())
	if g.invisible != nil {
		player.Hand.AddCard(g.invisible)
		g.invisible = nil
		count++
	}

	g.logPlayer(player, nil, "%s picks up the pile (%d cards)", player.Name, count)
	g.nextTurn()
	return nil
}

// RemovePlayer takes the player out of the game immediately.
// Their cards leave play. If only one player remains, they win by default.
func (g *Game) RemovePlayer(playerID string) {
	index := -1
	for i, id := range g.order {
		if id == playerID {
			index = i
			break
		}
	}

	if index == -1 {
		return
	}

	player := g.players[playerID]
	delete(g.players, playerID)
	g.order = append(g.order[:index], g.order[index+1:]...)

	g.burned.AddCards(player.Hand.Clear())
	g.burned.AddCards(player.FaceUp.Clear())
	g.burned.AddCards(player.FaceDown.Clear())

	if len(g.order) == 0 {
		g.started = false
		return
	}

	if index < g.currentIdx {
		g.currentIdx--
	}
	if g.currentIdx >= len(g.order) {
		g.currentIdx = 0
	}

	g.logf("%s left the game", player.Name)

	if g.started && len(g.order) == 1 {
		g.started = false
		remaining := g.players[g.order[0]]
		g.logPlayer(remaining, nil, "%s wins: everyone else left", remaining.Name)
		return
	}

	g.maybeFinishSetup()
}

// refillHand draws the player's hand back up while the deck lasts
func (g *Game) refillHand(player *Player) {
	if want := g.options.RefillSize - len(player.Hand); want > 0 {
		player.Hand.AddCards(g.deck.Draw(want))
	}
}

// nextTurn moves the turn pointer one step in the current direction
func (g *Game) nextTurn() {
	n := len(g.order)
	if n == 0 {
		return
	}

	g.currentIdx = ((g.currentIdx+g.direction)%n + n) % n
}
