package shed

import "errors"

// ErrNotEnoughPlayers is an error when the game is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("game requires at least two players")

// ErrGameNotActive is an error when a play is attempted before the game started or after it ended
var ErrGameNotActive = errors.New("the game is not active")

// ErrSetupNotComplete is an error when a play is attempted during the setup phase
var ErrSetupNotComplete = errors.New("the setup phase is not complete")

// ErrSetupAlreadyComplete happens when a player selects face-up cards twice
var ErrSetupAlreadyComplete = errors.New("you already selected your face-up cards")

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrNoCardsSelected happens when a play resolves to zero cards
var ErrNoCardsSelected = errors.New("no cards selected")

// ErrInvalidSelection happens when a selection references a card that does not exist
var ErrInvalidSelection = errors.New("selection references a card that does not exist")

// ErrIllegalPlay happens when the selected cards cannot beat the top of the pile
var ErrIllegalPlay = errors.New("the play is not legal")

// ErrFaceUpNotPlayable happens when face-up cards are played while the hand still has cards
var ErrFaceUpNotPlayable = errors.New("face-up cards cannot be played while you hold cards")

// ErrFaceDownNotPlayable happens when face-down cards are played while other cards remain
var ErrFaceDownNotPlayable = errors.New("face-down cards cannot be played yet")

// ErrMultipleFaceDownCards happens when more than one face-down card is played at once
var ErrMultipleFaceDownCards = errors.New("face-down cards must be played one at a time")

// ErrPileIsEmpty happens when a player tries to pick up an empty pile
var ErrPileIsEmpty = errors.New("there is nothing to pick up")

// ErrPlayerNotInGame happens when an action arrives from an unknown player
var ErrPlayerNotInGame = errors.New("player is not in this game")
