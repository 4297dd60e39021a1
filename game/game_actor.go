// File: game/game_actor.go
package game

import (
	"time"

	"go.uber.org/zap"

	"duelpong/actors"
	"duelpong/utils"
)

// GameActor owns the World. All tick, input, and snapshot traffic funnels
// through its mailbox, so the world only ever has one writer and readers
// never observe a half-applied tick. Input messages queued before a GameTick
// are applied before that tick integrates.
type GameActor struct {
	cfg    utils.Config
	world  *World
	engine *actors.Engine
	log    *zap.Logger

	broadcasterPID *actors.PID
	selfPID        *actors.PID

	ticker       *time.Ticker
	stopTickerCh chan struct{}
}

// NewGameActorProducer creates a producer for the GameActor. The broadcaster
// PID may be nil when no network fan-out is wanted.
func NewGameActorProducer(engine *actors.Engine, cfg utils.Config, broadcasterPID *actors.PID, log *zap.Logger) actors.Producer {
	if log == nil {
		log = zap.NewNop()
	}
	return func() actors.Actor {
		return &GameActor{
			cfg:            cfg,
			world:          NewWorld(cfg),
			engine:         engine,
			log:            log,
			broadcasterPID: broadcasterPID,
			stopTickerCh:   make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx actors.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case actors.Started:
		a.log.Info("game actor started",
			zap.String("actor", a.selfPID.String()),
			zap.Duration("tickPeriod", a.cfg.TickPeriod),
		)
		a.ticker = time.NewTicker(a.cfg.TickPeriod)
		go a.runTickerLoop()

	case GameTick:
		a.step()

	case PlayerInputMessage:
		ApplyKeyEvent(a.world.Paddle1, m.Event, a.cfg.InputSpeed)

	case SnapshotRequest:
		ctx.Respond(a.world.Snapshot())

	case actors.Stopping:
		a.log.Info("game actor stopping", zap.String("actor", a.selfPID.String()))
		if a.ticker != nil {
			a.ticker.Stop()
		}
		select {
		case <-a.stopTickerCh:
		default:
			close(a.stopTickerCh)
		}

	case actors.Stopped:

	default:
		a.log.Warn("game actor received unknown message",
			zap.String("actor", a.selfPID.String()),
			zap.Any("type", m),
		)
	}
}

// step runs one fixed simulation step: steer the tracking paddle from the
// ball's current position, advance the world, publish the snapshot.
func (a *GameActor) step() {
	SteerPaddle(a.world.Paddle2, a.world.Ball, a.cfg.AISpeed)
	a.world.Tick(1)

	if a.broadcasterPID != nil {
		snap := a.world.Snapshot()
		a.engine.Send(a.broadcasterPID, BroadcastSnapshotCommand{Snapshot: snap}, a.selfPID)
	}
}

// runTickerLoop feeds GameTick messages into the actor's own mailbox at the
// fixed step period.
func (a *GameActor) runTickerLoop() {
	tick := GameTick{}
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-a.ticker.C:
			a.engine.Send(a.selfPID, tick, nil)
		}
	}
}

