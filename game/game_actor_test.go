// File: game/game_actor_test.go
package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"duelpong/actors"
	"duelpong/utils"
)

const askTimeout = 2 * time.Second

// recordingActor captures every message sent to it, standing in for the
// broadcaster.
type recordingActor struct {
	mu       sync.Mutex
	received []any
}

func (a *recordingActor) Receive(ctx actors.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = append(a.received, ctx.Message())
}

func (a *recordingActor) snapshots() []Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	var snaps []Snapshot
	for _, m := range a.received {
		if cmd, ok := m.(BroadcastSnapshotCommand); ok {
			snaps = append(snaps, cmd.Snapshot)
		}
	}
	return snaps
}

// manualTickConfig returns a config whose ticker effectively never fires so
// tests drive GameTick by hand.
func manualTickConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = time.Hour
	cfg.Seed = 1
	return cfg
}

func askSnapshot(t *testing.T, engine *actors.Engine, pid *actors.PID) Snapshot {
	t.Helper()
	reply, err := engine.Ask(pid, SnapshotRequest{}, askTimeout)
	require.NoError(t, err)
	snap, ok := reply.(Snapshot)
	require.True(t, ok, "expected Snapshot reply, got %T", reply)
	return snap
}

// trySnapshot is the polling variant for Eventually conditions: it reports
// failure instead of failing the test from a non-test goroutine.
func trySnapshot(engine *actors.Engine, pid *actors.PID) (Snapshot, bool) {
	reply, err := engine.Ask(pid, SnapshotRequest{}, 100*time.Millisecond)
	if err != nil {
		return Snapshot{}, false
	}
	snap, ok := reply.(Snapshot)
	return snap, ok
}

func TestGameActor_TickAdvancesWorld(t *testing.T) {
	engine := actors.NewEngine(zap.NewNop())
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(actors.NewProps(NewGameActorProducer(engine, manualTickConfig(), nil, nil)))
	require.NotNil(t, pid)

	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(engine, pid)
		return ok && snap.Ticks == 1
	}, time.Second, 10*time.Millisecond)

	snap := askSnapshot(t, engine, pid)
	// Ball integrated once from the center with the default velocity.
	assert.Equal(t, 247.0, snap.Ball.X)
	assert.Equal(t, 246.5, snap.Ball.Y)
}

func TestGameActor_InputAppliesBeforeNextTick(t *testing.T) {
	engine := actors.NewEngine(zap.NewNop())
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(actors.NewProps(NewGameActorProducer(engine, manualTickConfig(), nil, nil)))
	require.NotNil(t, pid)

	// Mailbox ordering guarantees the input lands before the tick.
	engine.Send(pid, PlayerInputMessage{Event: KeyEvent{KeyDown, KeyMoveUp}}, nil)
	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(engine, pid)
		return ok && snap.Ticks == 1
	}, time.Second, 10*time.Millisecond)

	snap := askSnapshot(t, engine, pid)
	assert.Equal(t, 228.0, snap.Paddle1.Y, "paddle moved up by the input speed")

	engine.Send(pid, PlayerInputMessage{Event: KeyEvent{KeyUp, KeyMoveUp}}, nil)
	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(engine, pid)
		return ok && snap.Ticks == 2
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 228.0, askSnapshot(t, engine, pid).Paddle1.Y, "paddle stopped after key-up")
}

func TestGameActor_AISteersPaddle2(t *testing.T) {
	engine := actors.NewEngine(zap.NewNop())
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(actors.NewProps(NewGameActorProducer(engine, manualTickConfig(), nil, nil)))
	require.NotNil(t, pid)

	// Ball starts at Y=245, paddle 2 top at 230: the tracking rule drives
	// the paddle down at the AI speed.
	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(engine, pid)
		return ok && snap.Ticks == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 231.5, askSnapshot(t, engine, pid).Paddle2.Y)
}

func TestGameActor_BroadcastsEachTick(t *testing.T) {
	engine := actors.NewEngine(zap.NewNop())
	defer engine.Shutdown(time.Second)

	recorder := &recordingActor{}
	recorderPID := engine.Spawn(actors.NewProps(func() actors.Actor { return recorder }))
	require.NotNil(t, recorderPID)

	pid := engine.Spawn(actors.NewProps(NewGameActorProducer(engine, manualTickConfig(), recorderPID, nil)))
	require.NotNil(t, pid)

	engine.Send(pid, GameTick{}, nil)
	engine.Send(pid, GameTick{}, nil)

	require.Eventually(t, func() bool {
		return len(recorder.snapshots()) >= 2
	}, time.Second, 10*time.Millisecond)

	snaps := recorder.snapshots()
	assert.Equal(t, uint64(1), snaps[0].Ticks)
	assert.Equal(t, uint64(2), snaps[1].Ticks)
}

func TestGameActor_TickerDrivesTicks(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = 5 * time.Millisecond
	cfg.Seed = 1

	engine := actors.NewEngine(zap.NewNop())
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(actors.NewProps(NewGameActorProducer(engine, cfg, nil, nil)))
	require.NotNil(t, pid)

	require.Eventually(t, func() bool {
		snap, ok := trySnapshot(engine, pid)
		return ok && snap.Ticks >= 3
	}, 2*time.Second, 10*time.Millisecond)
}
