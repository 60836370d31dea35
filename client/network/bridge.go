package network

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// disconnectedMessage is the user-facing banner dispatched when the
// real-time connection to the server is lost.
const disconnectedMessage = "Lost the real-time connection to the game. Try reloading the page."

// Frame types the server pushes over the game socket.
const (
	frameTypePlayersState        = "playersState"
	frameTypeGameUpdated         = "gameUpdated"
	frameTypeLastCancelableEvent = "lastCancelableEvent"
	frameTypeSetResponse         = "setResponse"
	frameTypeDroppedCards        = "droppedCards"
	frameTypeDraftCards          = "draftCards"
	frameTypeBlackmailed         = "blackmailed"
	frameTypeChat                = "Chat"
)

// envelope is the inbound frame wrapper. Data may be a JSON object or a
// JSON-encoded string carrying the object, depending on the sender.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Bridge owns the single WebSocket connection of an active game session and
// translates inbound frames into store sync actions. It never mutates state
// directly and it never surfaces a malformed frame to the user.
type Bridge struct {
	serverAddr string
	gameID     int
	store      *store.Store
	logger     *zap.SugaredLogger

	mu        sync.Mutex
	conn      *websocket.Conn
	closed    bool
	closeOnce sync.Once
}

// NewBridge creates a bridge for the given game. A bridge is never created
// without a game id; that is the caller contract for opening a connection.
func NewBridge(serverAddr string, gameID int, st *store.Store, logger *zap.SugaredLogger) (*Bridge, error) {
	if gameID == 0 {
		return nil, fmt.Errorf("no game id available")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Bridge{
		serverAddr: serverAddr,
		gameID:     gameID,
		store:      st,
		logger:     logger,
	}, nil
}

// URL returns the websocket endpoint for the bridge's game.
func (b *Bridge) URL() string {
	addr := b.serverAddr
	addr = strings.Replace(addr, "http://", "ws://", 1)
	addr = strings.Replace(addr, "https://", "wss://", 1)
	return fmt.Sprintf("%s/ws/game/%d", addr, b.gameID)
}

// Run connects and processes frames until the context is cancelled, the
// connection is closed, or a read fails. Frames are handled strictly in
// delivery order with no reordering or coalescing.
func (b *Bridge) Run(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, b.URL(), nil)
	if err != nil {
		b.store.Dispatch(store.SetError{Message: disconnectedMessage})
		return fmt.Errorf("failed to connect to game socket: %v", err)
	}
	b.mu.Lock()
	if b.closed {
		// Close won the race with a slow dial; don't leak the connection.
		b.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "session ended")
		return nil
	}
	b.conn = conn
	b.mu.Unlock()
	b.logger.Infow("connected to game socket", "url", b.URL())

	// A successful open clears any stale connectivity banner.
	b.store.Dispatch(store.SetError{Message: ""})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				b.logger.Infow("game socket closed", "game_id", b.gameID)
				return nil
			}
			b.store.Dispatch(store.SetError{Message: disconnectedMessage})
			return fmt.Errorf("failed to read from game socket: %v", err)
		}
		b.handleFrame(data)
	}
}

// handleFrame decodes one inbound frame and forwards it to the store. Parse
// failures are logged and swallowed; unknown frame types are ignored.
func (b *Bridge) handleFrame(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		b.logger.Warnw("dropping malformed frame", "error", err)
		return
	}

	switch env.Type {
	case frameTypePlayersState:
		var players []types.Player
		if err := decodeData(env.Data, &players); err != nil {
			b.logger.Warnw("dropping malformed players snapshot", "error", err)
			return
		}
		b.store.Sync(store.SetPlayers{Players: players})

	case frameTypeGameUpdated:
		var game types.Game
		if err := decodeData(env.Data, &game); err != nil {
			b.logger.Warnw("dropping malformed game snapshot", "error", err)
			return
		}
		b.store.Sync(store.SetGame{Game: game})
		if game.Log != nil {
			b.store.Sync(store.SetLogs{Entries: game.Log})
		}

	case frameTypeLastCancelableEvent:
		var entry types.LogEntry
		if err := decodeData(env.Data, &entry); err != nil {
			b.logger.Warnw("dropping malformed counter-play log entry", "error", err)
			return
		}
		b.store.Sync(store.SetLastCancelableEvent{Entry: &entry})

	case frameTypeSetResponse:
		var entry types.LogEntry
		if err := decodeData(env.Data, &entry); err != nil {
			b.logger.Warnw("dropping malformed set counter-play log entry", "error", err)
			return
		}
		b.store.Sync(store.SetLastCancelableSet{Entry: &entry})

	case frameTypeDroppedCards:
		var cards []types.Card
		if err := decodeData(env.Data, &cards); err != nil {
			b.logger.Warnw("dropping malformed discard pile snapshot", "error", err)
			return
		}
		b.store.Sync(store.SetDiscardPile{Cards: cards})

	case frameTypeDraftCards:
		var cards []types.Card
		if err := decodeData(env.Data, &cards); err != nil {
			b.logger.Warnw("dropping malformed draft pile snapshot", "error", err)
			return
		}
		b.store.Sync(store.SetDraftPile{Cards: cards})

	case frameTypeBlackmailed:
		var secret types.Secret
		if err := decodeData(env.Data, &secret); err != nil {
			b.logger.Warnw("dropping malformed blackmail push", "error", err)
			return
		}
		b.store.Sync(store.SetBlackmailSecret{Secret: &secret})

	case frameTypeChat:
		var msg types.ChatMessage
		if err := decodeData(env.Data, &msg); err != nil {
			b.logger.Warnw("dropping malformed chat message", "error", err)
			return
		}
		b.store.Sync(store.AddChatMessage{Message: msg})

	default:
		b.logger.Debugw("ignoring unknown frame type", "type", env.Type)
	}
}

// Close closes the socket exactly once. Safe to call concurrently with Run:
// closing before the dial completes makes Run drop the connection as soon as
// it lands.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		conn := b.conn
		b.mu.Unlock()
		if conn != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "session ended")
		}
	})
}

// decodeData unwraps the envelope payload. The server sometimes
// double-encodes it as a JSON string, which is handled transparently.
func decodeData(data json.RawMessage, v interface{}) error {
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		return json.Unmarshal([]byte(inner), v)
	}
	return json.Unmarshal(data, v)
}
