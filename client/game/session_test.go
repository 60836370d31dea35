package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "missing game id",
			opts: Options{ServerAddr: "http://localhost:8000", MyPlayerID: 7},
		},
		{
			name: "missing player id",
			opts: Options{ServerAddr: "http://localhost:8000", Game: types.Game{ID: 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(tc.opts)
			assert.Error(t, err)
		})
	}
}

func TestNewSessionWiresComponents(t *testing.T) {
	s, err := NewSession(Options{
		ServerAddr: "http://localhost:8000",
		Game:       types.Game{ID: 1, Status: types.GameStatusInProgress},
		MyPlayerID: 7,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", s.ID().String())
	assert.NotNil(t, s.Store())
	assert.NotNil(t, s.Engine())
	assert.Equal(t, types.StepStart, s.Store().State().CurrentStep)
	assert.Equal(t, 7, s.Store().State().MyPlayerID)
}

func TestSessionFinishSignal(t *testing.T) {
	s, err := NewSession(Options{
		ServerAddr: "http://localhost:8000",
		Game:       types.Game{ID: 1, Status: types.GameStatusInProgress},
		MyPlayerID: 7,
	})
	require.NoError(t, err)

	s.Store().Sync(store.SetGame{Game: types.Game{ID: 1, Status: types.GameStatusFinished}})

	select {
	case <-s.finished:
	case <-time.After(time.Second):
		t.Fatal("finished game did not signal the session")
	}
}

func TestSessionRunFailsWhenServerUnreachable(t *testing.T) {
	s, err := NewSession(Options{
		ServerAddr: "http://127.0.0.1:1", // nothing listens here
		Game:       types.Game{ID: 1, Status: types.GameStatusInProgress},
		MyPlayerID: 7,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = s.Run(ctx)
	require.Error(t, err)
	assert.NotEmpty(t, s.Store().State().ErrorMessage)
}

func TestSessionSendChat(t *testing.T) {
	var body struct {
		Message string `json:"message"`
	}
	r := chi.NewRouter()
	r.Post("/send/chat/{ids}", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s, err := NewSession(Options{
		ServerAddr: srv.URL,
		Game:       types.Game{ID: 1, Status: types.GameStatusInProgress},
		MyPlayerID: 7,
	})
	require.NoError(t, err)

	require.NoError(t, s.SendChat(context.Background(), "it was the butler"))
	assert.Equal(t, "it was the butler", body.Message)
}
