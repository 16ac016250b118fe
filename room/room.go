package room

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"github.com/uno-dare/server/consts"
	"github.com/uno-dare/server/model"
	"github.com/uno-dare/server/store"
	"github.com/uno-dare/server/uno/event"
	"github.com/uno-dare/server/uno/game"
	"github.com/uno-dare/server/uno/player"
)

// Config carries the collaborators a coordinator needs. Zero fields get
// sensible defaults from fill().
type Config struct {
	Store          store.Store
	Advisor        player.Advisor
	Dares          []string
	AdvisorTimeout time.Duration
	Clock          quartz.Clock
	Logger         *logrus.Logger
}

func (cfg Config) fill() Config {
	if cfg.Store == nil {
		cfg.Store = store.NewMemory()
	}
	if cfg.Advisor == nil {
		cfg.Advisor = player.NewHeuristic()
	}
	if len(cfg.Dares) == 0 {
		cfg.Dares = DefaultDares
	}
	if cfg.AdvisorTimeout <= 0 {
		cfg.AdvisorTimeout = consts.DefaultAdvisorTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return cfg
}

// Coordinator is the single authoritative owner of one game. Clients submit
// action messages; the run loop applies engine operations sequentially and
// commits each accepted transition with the store's conditional write, so at
// most one mutation lands per logical turn even if another writer shares the
// store. The advisor call is the only asynchronous operation: its result
// re-enters the loop as a message and is discarded silently when the turn
// has moved on.
type Coordinator struct {
	ID string

	cfg Config
	log *logrus.Entry

	state     *game.GameState
	actions   chan submission
	aiResults chan aiResult
	aiBusy    bool

	published atomic.Pointer[game.GameState]

	subMu   sync.Mutex
	subs    map[int64]chan *game.GameState
	nextSub int64

	stop context.CancelFunc
}

type submission struct {
	action model.ActionMessage
	reply  chan error
}

type aiResult struct {
	playerID string
	observed int64
	decision player.Decision
	err      error
}

// New deals the opening round and writes the initial snapshot to the store.
// The caller starts the owner loop with Start.
func New(id string, roster []game.Player, cfg Config) (*Coordinator, error) {
	cfg = cfg.fill()
	state, err := game.NewRound(roster)
	if err != nil {
		return nil, err
	}
	if err := cfg.Store.SaveIf(context.Background(), id, state, 0); err != nil {
		return nil, err
	}
	c := &Coordinator{
		ID:        id,
		cfg:       cfg,
		log:       cfg.Logger.WithField("game", id),
		state:     state,
		actions:   make(chan submission),
		aiResults: make(chan aiResult),
		subs:      make(map[int64]chan *game.GameState),
	}
	c.published.Store(state.Clone())
	return c, nil
}

// Start runs the owner loop until ctx is cancelled or Close is called.
func (c *Coordinator) Start(ctx context.Context) {
	ctx, c.stop = context.WithCancel(ctx)
	go c.run(ctx)
}

func (c *Coordinator) Close() {
	if c.stop != nil {
		c.stop()
	}
}

// Submit hands an action to the owner loop and waits for acceptance or
// rejection. A rejection means the state did not change.
func (c *Coordinator) Submit(ctx context.Context, action model.ActionMessage) error {
	sub := submission{action: action, reply: make(chan error, 1)}
	select {
	case c.actions <- sub:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-sub.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the last published state.
func (c *Coordinator) Snapshot() *game.GameState {
	return c.published.Load().Clone()
}

// Subscribe registers an observer for published snapshots. The channel is
// buffered; slow observers miss intermediate revisions, never the loop.
func (c *Coordinator) Subscribe() (int64, <-chan *game.GameState) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.nextSub++
	ch := make(chan *game.GameState, 8)
	c.subs[c.nextSub] = ch
	return c.nextSub, ch
}

func (c *Coordinator) Unsubscribe(id int64) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if ch, ok := c.subs[id]; ok {
		delete(c.subs, id)
		close(ch)
	}
}

func (c *Coordinator) run(ctx context.Context) {
	c.maybeConsultAdvisor(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-c.actions:
			sub.reply <- c.handle(ctx, sub.action)
		case res := <-c.aiResults:
			c.applyAdvisorDecision(ctx, res)
		}
	}
}

func (c *Coordinator) handle(ctx context.Context, action model.ActionMessage) error {
	if action.Version != 0 && action.Version != c.state.Version {
		return consts.ErrorsStaleVersion
	}
	prev := c.state

	var next *game.GameState
	var err error
	switch action.Type {
	case model.ActionPlayCard:
		if action.Card == nil {
			return consts.ErrorsInputInvalid
		}
		next, err = game.PlayCard(prev, action.PlayerID, *action.Card)
	case model.ActionDrawCard:
		next, err = game.DrawCard(prev, action.PlayerID)
	case model.ActionChooseColor:
		next, err = game.ChooseColor(prev, action.PlayerID, action.Color)
	case model.ActionResolvePending:
		dare := ""
		if !action.ChoseToDraw {
			dare = c.pickDare()
		}
		next, err = game.ResolvePending(prev, action.PlayerID, action.ChoseToDraw, dare)
	case model.ActionRestart:
		next, err = c.restart(prev, action.PlayerID)
	default:
		err = consts.ErrorsInputInvalid
	}
	if err != nil {
		return err
	}
	return c.commit(ctx, prev, next, action)
}

// restart re-deals a fresh round from the finished round's roster. Only the
// host may restart.
func (c *Coordinator) restart(prev *game.GameState, playerID string) (*game.GameState, error) {
	if prev.Status != game.StatusFinished {
		return nil, consts.ErrorsGameNotActive
	}
	actor := prev.Player(playerID)
	if actor == nil || !actor.IsHost {
		return nil, consts.ErrorsNotYourTurn
	}
	next, err := game.NewRound(prev.Players)
	if err != nil {
		return nil, err
	}
	// Versions keep growing across rounds so stale observers stay stale.
	next.Version = prev.Version + 1
	return next, nil
}

func (c *Coordinator) commit(ctx context.Context, prev, next *game.GameState, action model.ActionMessage) error {
	if err := c.cfg.Store.SaveIf(ctx, c.ID, next, prev.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// Another writer got there first. Re-read and drop ours.
			if authoritative, lerr := c.cfg.Store.Load(ctx, c.ID); lerr == nil {
				c.state = authoritative
			}
			c.log.WithField("version", prev.Version).Warn("conditional write lost, submission dropped")
			return consts.ErrorsStaleVersion
		}
		return err
	}
	c.state = next
	c.emit(action, prev, next)
	c.publish(next)
	c.maybeConsultAdvisor(ctx)
	return nil
}

func (c *Coordinator) emit(action model.ActionMessage, prev, next *game.GameState) {
	actorName := action.PlayerID
	if p := prev.Player(action.PlayerID); p != nil {
		actorName = p.Name
	}
	switch action.Type {
	case model.ActionPlayCard:
		if action.Card != nil && !action.Card.IsWild() {
			event.CardPlayed.Emit(event.CardPlayedPayload{GameID: c.ID, PlayerName: actorName, Card: *action.Card})
		}
	case model.ActionChooseColor:
		event.ColorChosen.Emit(event.ColorChosenPayload{GameID: c.ID, PlayerName: actorName, Color: action.Color})
		if top, ok := next.TopCard(); ok {
			event.CardPlayed.Emit(event.CardPlayedPayload{GameID: c.ID, PlayerName: actorName, Card: top})
		}
	case model.ActionDrawCard:
		event.CardsDrawn.Emit(event.CardsDrawnPayload{GameID: c.ID, PlayerName: actorName, Amount: 1})
	case model.ActionResolvePending:
		if action.ChoseToDraw {
			if prevPlayer, nextPlayer := prev.Player(action.PlayerID), next.Player(action.PlayerID); prevPlayer != nil && nextPlayer != nil {
				amount := len(nextPlayer.Hand) - len(prevPlayer.Hand)
				event.CardsDrawn.Emit(event.CardsDrawnPayload{GameID: c.ID, PlayerName: actorName, Amount: amount})
			}
		} else if nextPlayer := next.Player(action.PlayerID); nextPlayer != nil {
			event.DareAssigned.Emit(event.DareAssignedPayload{GameID: c.ID, PlayerName: actorName, Dare: nextPlayer.CurrentDare})
		}
	}
	if next.Status == game.StatusFinished && prev.Status != game.StatusFinished {
		event.GameFinished.Emit(event.GameFinishedPayload{GameID: c.ID, Winner: next.Winner})
	}
}

func (c *Coordinator) publish(state *game.GameState) {
	snapshot := state.Clone()
	snapshot.ProcessingTurn = c.aiBusy
	c.published.Store(snapshot)
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (c *Coordinator) pickDare() string {
	return c.cfg.Dares[rand.Intn(len(c.cfg.Dares))]
}
