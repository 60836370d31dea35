package types

// Card types as reported by the server.
const (
	CardTypeDetective = "detective"
	CardTypeEvent     = "event"
)

// CardNotSoFast is the counter-play card that re-opens a cancellation window.
const CardNotSoFast = "Not so fast"

// Directions a "Dead card folly" exchange can run around the table.
const (
	FollyLeft  = "left"
	FollyRight = "right"
)

// Game statuses as reported by the server.
const (
	GameStatusInProgress = "in progress"
	GameStatusFinished   = "finished"
)

// Card represents a single card as the server reports it.
type Card struct {
	ID       int    `json:"card_id"`
	GameID   int    `json:"game_id"`
	PlayerID int    `json:"player_id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	PickedUp bool   `json:"picked_up"`
	Dropped  bool   `json:"dropped"`
}

// Secret represents a player secret. Revealed keeps the server's wire
// spelling ("revelated").
type Secret struct {
	ID         int  `json:"secret_id"`
	PlayerID   int  `json:"player_id"`
	GameID     int  `json:"game_id"`
	Revealed   bool `json:"revelated"`
	Murderer   bool `json:"murderer"`
	Accomplice bool `json:"accomplice"`
}

// CardSet represents a played detective set on the table.
type CardSet struct {
	ID         int    `json:"set_id"`
	GameID     int    `json:"game_id"`
	PlayerID   int    `json:"player_id"`
	Name       string `json:"name"`
	Detectives []Card `json:"detective"`
}

// Player represents the full per-player state the server broadcasts.
// PendingAction is authoritative: only a server push may clear it.
type Player struct {
	ID             int           `json:"player_id"`
	Name           string        `json:"name"`
	Host           bool          `json:"host"`
	GameID         int           `json:"game_id"`
	TurnOrder      int           `json:"turn_order"`
	Cards          []Card        `json:"cards"`
	Secrets        []Secret      `json:"secrets"`
	Sets           []CardSet     `json:"sets"`
	SocialDisgrace bool          `json:"social_disgrace"`
	PendingAction  PendingAction `json:"pending_action"`
	VotesReceived  int           `json:"votes_received"`
}

// Game represents the authoritative game record. Log is only populated on
// snapshots that embed the audit trail.
type Game struct {
	ID             int        `json:"game_id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	MinPlayers     int        `json:"min_players"`
	MaxPlayers     int        `json:"max_players"`
	PlayersAmount  int        `json:"players_amount"`
	CurrentTurn    int        `json:"current_turn"`
	CardsLeft      int        `json:"cards_left"`
	FollyDirection string     `json:"direction_folly"`
	Log            []LogEntry `json:"log"`
}

// LogEntry is one audit-trail record. Counter-play entries double as the
// "someone just countered" signal for the cancellation window.
type LogEntry struct {
	ID        int    `json:"log_id"`
	CreatedAt string `json:"created_at"`
	Type      string `json:"type"`
	PlayerID  int    `json:"player_id"`
	CardName  string `json:"card_name"`
	SetName   string `json:"set_name"`
}

// ChatMessage is one in-game chat line.
type ChatMessage struct {
	SenderName string `json:"sender_name"`
	SenderID   int    `json:"sender_id"`
	Message    string `json:"message"`
}
