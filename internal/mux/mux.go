package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"shithead-server/internal/config"
	"shithead-server/pkg/room"
	"shithead-server/pkg/shed"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	lobby   *room.Lobby
}

// NewMux returns a new HTTP mux with a running lobby behind it
func NewMux(version string) *Mux {
	cfg := config.Instance()

	lobby := room.NewLobby(gameOptions(cfg))
	lobby.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		lobby:   lobby,
	}

	this.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	if cfg.StaticDir != "" {
		this.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return this
}

func gameOptions(cfg config.Config) shed.Options {
	opts := shed.DefaultOptions()
	opts.HandSize = cfg.Game.HandSize
	opts.FaceDownSize = cfg.Game.FaceDownSize
	opts.FaceUpSize = cfg.Game.FaceUpSize
	opts.RefillSize = cfg.Game.RefillSize

	return opts
}
