package shed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"shithead-server/pkg/deck"
)

// LogMessage is a single entry in the game log.
// If PlayerIDs is empty, the message is a general statement.
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []string     `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// logf appends a general message to the game log
func (g *Game) logf(format string, a ...interface{}) {
	g.appendLog(nil, nil, format, a...)
}

// logPlayer appends a message about a player and the cards involved
func (g *Game) logPlayer(player *Player, cards []*deck.Card, format string, a ...interface{}) {
	g.appendLog([]string{player.ID}, cards, format, a...)
}

func (g *Game) appendLog(playerIDs []string, cards []*deck.Card, format string, a ...interface{}) {
	g.log = append(g.log, &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Cards:     cards,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	})
}
