package room

import (
	"context"

	"github.com/uno-dare/server/model"
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/game"
	"github.com/uno-dare/server/uno/player"
)

// maybeConsultAdvisor drives automated players. A pending draw-or-dare aimed
// at an automated player resolves synchronously (the decision contract has
// no forfeit branch, so automated players always draw). A regular turn kicks
// off the asynchronous advisor call, tagged with the version it observed.
func (c *Coordinator) maybeConsultAdvisor(ctx context.Context) {
	s := c.state
	if s.Status != game.StatusActive || c.aiBusy {
		return
	}
	if s.Pending != nil {
		target := s.Player(s.Pending.PlayerID)
		if target != nil && target.IsAI {
			_ = c.handle(ctx, model.ActionMessage{
				Type:        model.ActionResolvePending,
				PlayerID:    target.ID,
				ChoseToDraw: true,
			})
		}
		return
	}
	if s.AwaitingColor != nil {
		return
	}
	current := s.CurrentPlayer()
	if current == nil || !current.IsAI {
		return
	}

	c.aiBusy = true
	c.publish(s) // flips the advisory processingTurn hint for observers
	in := buildInput(s, current)
	go c.consult(ctx, in, current.ID, s.Version)
}

type consultOutcome struct {
	decision player.Decision
	err      error
}

// consult awaits the advisor off the owner loop so other clients keep
// observing state, then feeds the outcome back in as a message.
func (c *Coordinator) consult(ctx context.Context, in player.Input, playerID string, observed int64) {
	dctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make(chan consultOutcome, 1)
	go func() {
		decision, err := c.cfg.Advisor.Decide(dctx, in)
		outcomes <- consultOutcome{decision: decision, err: err}
	}()

	timedOut := make(chan struct{})
	timer := c.cfg.Clock.AfterFunc(c.cfg.AdvisorTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	var out consultOutcome
	select {
	case out = <-outcomes:
	case <-timedOut:
		out = consultOutcome{err: context.DeadlineExceeded}
	case <-ctx.Done():
		return
	}

	select {
	case c.aiResults <- aiResult{playerID: playerID, observed: observed, decision: out.decision, err: out.err}:
	case <-ctx.Done():
	}
}

// applyAdvisorDecision runs on the owner loop. Decisions are untrusted: a
// stale decision is discarded silently, an invalid or missing card degrades
// to a draw, and a wild is committed synchronously with the deterministic
// color policy.
func (c *Coordinator) applyAdvisorDecision(ctx context.Context, res aiResult) {
	c.aiBusy = false
	s := c.state
	if s.Status != game.StatusActive || s.Version != res.observed || s.CurrentPlayerID != res.playerID {
		c.log.WithField("player", res.playerID).Debug("advisor decision arrived after the turn moved on, discarded")
		c.publish(s)
		c.maybeConsultAdvisor(ctx)
		return
	}

	draw := model.ActionMessage{Type: model.ActionDrawCard, PlayerID: res.playerID}
	if res.err != nil {
		c.log.WithError(res.err).WithField("player", res.playerID).Warn("advisor failed, falling back to draw")
		_ = c.handle(ctx, draw)
		return
	}
	decision := res.decision
	if decision.SaidUno {
		c.log.WithField("player", res.playerID).Info("player announced uno")
	}
	if decision.CardToPlay == nil {
		_ = c.handle(ctx, draw)
		return
	}

	proposed := *decision.CardToPlay
	if !holdsPlayable(s, res.playerID, proposed) {
		c.log.WithFields(map[string]interface{}{
			"player": res.playerID,
			"card":   proposed.String(),
		}).Warn("advisor proposed an illegal card, falling back to draw")
		_ = c.handle(ctx, draw)
		return
	}

	if err := c.handle(ctx, model.ActionMessage{Type: model.ActionPlayCard, PlayerID: res.playerID, Card: &proposed}); err != nil {
		_ = c.handle(ctx, draw)
		return
	}

	// A wild leaves the engine awaiting a color; commit it right away with
	// the deterministic policy over the remaining hand.
	if c.state.AwaitingColor != nil && c.state.AwaitingColor.PlayerID == res.playerID {
		chosen := player.PickColor(c.state.Player(res.playerID).Hand)
		_ = c.handle(ctx, model.ActionMessage{Type: model.ActionChooseColor, PlayerID: res.playerID, Color: chosen})
	}
}

// holdsPlayable re-validates an advisor's proposed card against the hand and
// the legality rules.
func holdsPlayable(s *game.GameState, playerID string, proposed card.Card) bool {
	top, ok := s.TopCard()
	if !ok {
		return false
	}
	actor := s.Player(playerID)
	if actor == nil {
		return false
	}
	for _, held := range actor.Hand {
		if held.Equal(proposed) {
			return game.Playable(held, top)
		}
	}
	return false
}

func buildInput(s *game.GameState, current *game.Player) player.Input {
	top, _ := s.TopCard()
	counts := make(map[string]int, len(s.Players))
	for i := range s.Players {
		counts[s.Players[i].Name] = len(s.Players[i].Hand)
	}
	return player.Input{
		PlayerName:    current.Name,
		Hand:          append([]card.Card(nil), current.Hand...),
		TopCard:       top,
		NextPlayer:    s.NextPlayer().Name,
		PlayDirection: s.Direction,
		Players:       counts,
	}
}
