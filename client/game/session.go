// Package game assembles one playable session: the state store, the
// synchronization bridge, the step engine and the REST client, wired
// together with a shared lifecycle.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/engine"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/network"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/rest"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Options configures a session.
type Options struct {
	// ServerAddr is the http(s) base address of the game server.
	ServerAddr string
	// Game is the authoritative game record the player joined.
	Game types.Game
	// MyPlayerID identifies the local player within the game.
	MyPlayerID int
	// ResponseWindow overrides the counter-play window; zero keeps the
	// default.
	ResponseWindow time.Duration
	Logger         *zap.SugaredLogger
}

// Session is one player's live connection to one game. It owns every
// component's lifetime: Run blocks until the game finishes, the context is
// cancelled or the connection drops for good.
type Session struct {
	id     uuid.UUID
	logger *zap.SugaredLogger

	store  *store.Store
	rest   *rest.Client
	engine *engine.Engine
	bridge *network.Bridge

	finished chan struct{}
}

// NewSession wires up a session. Nothing connects until Run is called.
func NewSession(opts Options) (*Session, error) {
	if opts.Game.ID == 0 {
		return nil, fmt.Errorf("no game id available")
	}
	if opts.MyPlayerID == 0 {
		return nil, fmt.Errorf("no player id available")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	s := &Session{
		id:       uuid.New(),
		logger:   opts.Logger,
		finished: make(chan struct{}),
	}
	s.store = store.New(store.NewState(opts.Game, opts.MyPlayerID))
	s.rest = rest.NewClient(opts.ServerAddr)
	s.engine = engine.New(s.store, s.rest, engine.Options{
		ResponseWindow: opts.ResponseWindow,
		Logger:         opts.Logger,
	})

	bridge, err := network.NewBridge(opts.ServerAddr, opts.Game.ID, s.store, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync bridge: %v", err)
	}
	s.bridge = bridge

	// The server flipping the game to finished is the one authoritative
	// end-of-session signal.
	s.store.OnChange(func(prev, next store.State) {
		if prev.Game.Status != types.GameStatusFinished && next.Game.Status == types.GameStatusFinished {
			close(s.finished)
		}
	})
	return s, nil
}

// ID returns the session's unique id, used to correlate log lines.
func (s *Session) ID() uuid.UUID { return s.id }

// Store exposes the session state for read access and change subscriptions.
func (s *Session) Store() *store.Store { return s.store }

// Engine exposes the step controllers driving the turn flow.
func (s *Session) Engine() *engine.Engine { return s.engine }

// SendChat sends a chat line to the table.
func (s *Session) SendChat(ctx context.Context, message string) error {
	st := s.store.State()
	return s.rest.SendChat(ctx, st.Game.ID, st.MyPlayerID, message)
}

// Run connects the bridge and blocks until the session ends: the game
// finishing, the context being cancelled, or the connection failing.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Infow("starting session", "session_id", s.id, "game_id", s.store.State().Game.ID)
	defer s.engine.Close()

	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg.Go(func() error {
		return s.bridge.Run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-s.finished:
			s.logger.Infow("game finished", "session_id", s.id)
			cancel()
			s.bridge.Close()
			return nil
		case <-ctx.Done():
			s.bridge.Close()
			return nil
		}
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("session ended with error: %v", err)
	}
	return nil
}
