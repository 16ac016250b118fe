package network

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/uno-dare/server/model"
	"github.com/uno-dare/server/room"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Websocket serves the action/observation surface: POST /games bootstraps a
// game from a full roster, /ws attaches a player to a live game. The engine
// never sees this layer; it only forwards messages to the game's owner loop
// and streams published snapshots back.
type Websocket struct {
	addr     string
	registry *room.Registry
	log      *logrus.Logger
}

func NewWebsocketServer(addr string, registry *room.Registry, log *logrus.Logger) Websocket {
	return Websocket{addr: addr, registry: registry, log: log}
}

func (w Websocket) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", w.createGame)
	mux.HandleFunc("/ws", w.serveWs)
	srv := &http.Server{Addr: w.addr, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	w.log.WithField("addr", w.addr).Info("websocket server listening")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (w Websocket) createGame(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req model.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := w.registry.Create(context.Background(), req.Players)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusBadRequest)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(model.CreateGameResponse{GameID: c.ID})
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	coordinator, err := w.registry.Get(gameID)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	go w.handle(conn, coordinator, playerID)
}

// handle pumps one connection. All writes to conn go through the outbound
// channel so snapshots and error replies never interleave mid-frame.
func (w Websocket) handle(conn *websocket.Conn, coordinator *room.Coordinator, playerID string) {
	subID, snapshots := coordinator.Subscribe()
	outbound := make(chan interface{}, 16)
	done := make(chan struct{})

	go func() {
		defer conn.Close()
		for {
			select {
			case msg, ok := <-outbound:
				if !ok {
					return
				}
				data, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	outbound <- model.NewStateMessage(coordinator.Snapshot())
	go func() {
		for snapshot := range snapshots {
			select {
			case outbound <- model.NewStateMessage(snapshot):
			case <-done:
				return
			}
		}
	}()

	defer func() {
		coordinator.Unsubscribe(subID)
		close(done)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var action model.ActionMessage
		if err := json.Unmarshal(data, &action); err != nil {
			outbound <- model.NewErrorMessage(err)
			continue
		}
		// The connection speaks for exactly one player.
		action.PlayerID = playerID
		if err := coordinator.Submit(context.Background(), action); err != nil {
			outbound <- model.NewErrorMessage(err)
		}
	}
}
