/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Seednode/impostor/game"
	"github.com/Seednode/impostor/store"
	"github.com/Seednode/impostor/view"
	"github.com/Seednode/impostor/words"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *Gateway) {
	t.Helper()
	return newTestServerWith(t, &Config{maxMessageSize: 4096, clientTimeout: time.Minute})
}

func newTestServerWith(t *testing.T, cfg *Config) (*httptest.Server, *Gateway) {
	t.Helper()

	catalog := words.Default()
	g := newGateway(cfg, game.NewEngine(store.NewMemory(), catalog), catalog)

	errs := make(chan error, 16)
	srv := httptest.NewServer(newRouter(cfg, g, errs))
	t.Cleanup(srv.Close)

	return srv, g
}

type received struct {
	Type string          `json:"type"`
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type testClient struct {
	t    *testing.T
	conn *websocket.Conn
	id   string
	seq  int
}

func dial(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/impostor/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	c := &testClient{t: t, conn: conn}
	var hello connectedData
	c.decode(c.expect("connected"), &hello)
	if hello.PlayerID == "" {
		t.Fatalf("connected without a player id")
	}
	c.id = hello.PlayerID
	return c
}

func (c *testClient) next() received {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg received
	if err := c.conn.ReadJSON(&msg); err != nil {
		c.t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

// expect skips messages until one of the given type arrives.
func (c *testClient) expect(typ string) received {
	c.t.Helper()
	for {
		if msg := c.next(); msg.Type == typ {
			return msg
		}
	}
}

func (c *testClient) decode(msg received, v any) {
	c.t.Helper()
	if err := json.Unmarshal(msg.Data, v); err != nil {
		c.t.Fatalf("decode %s: %v", msg.Type, err)
	}
}

// call sends a command and returns its ack plus everything received before it.
func (c *testClient) call(command string, data any) (ackData, []received) {
	c.t.Helper()

	c.seq++
	id := strconv.Itoa(c.seq)
	if err := c.conn.WriteJSON(map[string]any{"type": command, "id": id, "data": data}); err != nil {
		c.t.Fatalf("WriteJSON: %v", err)
	}

	var before []received
	for {
		msg := c.next()
		if msg.Type == "ack" && msg.ID == id {
			var ack ackData
			c.decode(msg, &ack)
			return ack, before
		}
		before = append(before, msg)
	}
}

func (c *testClient) mustCall(command string, data any) (ackData, []received) {
	c.t.Helper()
	ack, before := c.call(command, data)
	if !ack.OK {
		c.t.Fatalf("%s failed: %s (%s)", command, ack.Error, ack.Code)
	}
	return ack, before
}

// nextView waits for the next gameUpdated message.
func (c *testClient) nextView() view.View {
	c.t.Helper()
	var v view.View
	c.decode(c.expect("gameUpdated"), &v)
	return v
}

func types(msgs []received) []string {
	var out []string
	for _, m := range msgs {
		out = append(out, m.Type)
	}
	return out
}

// from drops the messages that arrived before the first one of type typ.
func from(msgs []received, typ string) []received {
	for i, m := range msgs {
		if m.Type == typ {
			return msgs[i:]
		}
	}
	return nil
}

// table seats three players in a fresh game and returns them host first.
func table(t *testing.T, srv *httptest.Server) (string, []*testClient) {
	t.Helper()

	host := dial(t, srv)
	ack, before := host.mustCall("createGame", map[string]any{"hostName": "Ana", "maxPlayers": 3})
	if len(ack.GameID) != 6 {
		t.Fatalf("gameId = %q, want a 6 character code", ack.GameID)
	}
	if got := types(before); len(got) < 2 || got[0] != "gameCreated" || got[1] != "gameUpdated" {
		t.Fatalf("createGame sent %v, want gameCreated then gameUpdated", got)
	}

	players := []*testClient{host}
	for _, name := range []string{"Beto", "Caro"} {
		p := dial(t, srv)
		p.mustCall("joinGame", map[string]any{"gameId": strings.ToLower(ack.GameID), "playerName": name})
		players = append(players, p)
	}
	return ack.GameID, players
}

func TestGatewayGameStart(t *testing.T) {
	srv, _ := newTestServer(t)
	gameID, players := table(t, srv)

	_, before := players[0].mustCall("startGame", map[string]any{"gameId": gameID})
	before = from(before, "roundStarted")
	if got := types(before); len(got) < 3 || got[0] != "roundStarted" || got[1] != "nextPlayerTurn" || got[2] != "gameUpdated" {
		t.Fatalf("startGame sent %v to the host", got)
	}

	var (
		impostors int
		turn      nextPlayerTurnData
	)
	for i, p := range players {
		var round roundStartedData
		if i == 0 {
			p.decode(before[0], &round)
			p.decode(before[1], &turn)
		} else {
			p.decode(p.expect("roundStarted"), &round)
			p.decode(p.expect("nextPlayerTurn"), &turn)
		}
		if round.Round != 1 || turn.Round != 1 {
			t.Fatalf("player %d saw round %d/%d, want 1", i, round.Round, turn.Round)
		}

		var v view.View
		if i == 0 {
			p.decode(before[2], &v)
		} else {
			v = p.nextView()
		}
		if v.Phase != game.PhaseRounds || v.Self.Word == "" || v.Self.ID != p.id {
			t.Fatalf("player %d got view %+v", i, v)
		}
		if v.Self.Role == game.RoleImpostor {
			impostors++
		}
		if v.CurrentTurnPlayerID != turn.PlayerID {
			t.Fatalf("view turn %q disagrees with notification %q", v.CurrentTurnPlayerID, turn.PlayerID)
		}
	}
	if impostors != 1 {
		t.Fatalf("%d impostors dealt, want 1", impostors)
	}

	for _, p := range players {
		if p.id == turn.PlayerID {
			continue
		}
		ack, _ := p.call("playerReadyForRound", map[string]any{"gameId": gameID})
		if ack.OK || ack.Code != game.CodeNotYourTurn || ack.Error != game.ErrNotYourTurn.Message {
			t.Fatalf("out of turn ack = %+v", ack)
		}
		break
	}
}

func TestGatewayErrors(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		data     any
		wantCode game.Code
		wantMsg  string
	}{
		{name: "unknown game", command: "joinGame", data: map[string]any{"gameId": "NOPE22", "playerName": "Ana"},
			wantCode: game.CodeSessionNotFound, wantMsg: game.ErrSessionNotFound.Message},
		{name: "fractional seats", command: "createGame", data: map[string]any{"hostName": "Ana", "maxPlayers": 3.5},
			wantCode: game.CodeValidation},
		{name: "too many seats", command: "createGame", data: map[string]any{"hostName": "Ana", "maxPlayers": 21},
			wantCode: game.CodeValidation},
		{name: "unknown command", command: "dance", data: map[string]any{}, wantCode: game.CodeValidation},
		{name: "payload not an object", command: "joinGame", data: "not an object", wantCode: game.CodeValidation},
		{name: "seats as text", command: "createGame", data: map[string]any{"hostName": "Ana", "maxPlayers": "5"},
			wantCode: game.CodeValidation},
		{name: "name as number", command: "joinGame", data: map[string]any{"gameId": "NOPE22", "playerName": 7},
			wantCode: game.CodeValidation},
	}

	srv, _ := newTestServer(t)
	c := dial(t, srv)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.t = t
			ack, before := c.call(tt.command, tt.data)
			if ack.OK || ack.Code != tt.wantCode {
				t.Fatalf("ack = %+v, want code %q", ack, tt.wantCode)
			}
			if tt.wantMsg != "" && ack.Error != tt.wantMsg {
				t.Fatalf("ack error = %q, want %q", ack.Error, tt.wantMsg)
			}
			if got := types(before); len(got) != 1 || got[0] != "error" {
				t.Fatalf("sent %v before the ack, want a single error", got)
			}
		})
	}
}

func TestGatewayDisconnectKeepsSeat(t *testing.T) {
	srv, _ := newTestServer(t)
	gameID, players := table(t, srv)
	host := players[0]

	_ = players[2].conn.Close()

	for {
		v := host.nextView()
		if v.PlayerCount == 3 && !v.Players[2].Connected {
			break
		}
	}

	back := dial(t, srv)
	back.mustCall("joinGame", map[string]any{"gameId": gameID, "playerName": "caro"})

	for {
		v := host.nextView()
		if v.PlayerCount != 3 {
			t.Fatalf("reconnect changed the roster size to %d", v.PlayerCount)
		}
		if v.Players[2].Connected && v.Players[2].ID == back.id {
			break
		}
	}

	back.mustCall("requestState", map[string]any{"gameId": gameID})
}

func TestGatewayMalformedMessage(t *testing.T) {
	srv, _ := newTestServer(t)
	c := dial(t, srv)

	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(`{"type": nope}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	var failure errorData
	c.decode(c.expect("error"), &failure)
	if failure.Code != game.CodeValidation || failure.Message == genericError {
		t.Fatalf("error = %+v, want a validation error", failure)
	}

	if ack, _ := c.call("heartbeat", nil); !ack.OK {
		t.Fatalf("connection unusable after a malformed message: %+v", ack)
	}
}

func TestGatewayIdleClientDisconnected(t *testing.T) {
	srv, _ := newTestServerWith(t, &Config{maxMessageSize: 4096, clientTimeout: 500 * time.Millisecond})
	_, players := table(t, srv)
	host := players[0]

	// Only the host keeps reading, so only the host answers pings.
	for {
		v := host.nextView()
		if v.PlayerCount == 3 && v.Players[0].Connected && !v.Players[1].Connected && !v.Players[2].Connected {
			break
		}
	}
}

func TestGatewayLeaveGame(t *testing.T) {
	srv, _ := newTestServer(t)
	gameID, players := table(t, srv)

	players[0].mustCall("leaveGame", map[string]any{"gameId": gameID})

	v := players[1].nextView()
	for v.PlayerCount != 2 {
		v = players[1].nextView()
	}
	if v.HostID != players[1].id {
		t.Fatalf("host = %q, want the next player %q", v.HostID, players[1].id)
	}

	ack, _ := players[0].call("requestState", map[string]any{"gameId": gameID})
	if ack.OK || ack.Code != game.CodePlayerNotFound {
		t.Fatalf("state after leaving = %+v, want PLAYER_NOT_FOUND", ack)
	}
}

func TestHeartbeat(t *testing.T) {
	srv, _ := newTestServer(t)
	c := dial(t, srv)

	if ack, _ := c.call("heartbeat", nil); !ack.OK {
		t.Fatalf("heartbeat outside a game failed: %+v", ack)
	}

	created, _ := c.mustCall("createGame", map[string]any{"hostName": "Ana", "maxPlayers": 4})
	ack, _ := c.mustCall("heartbeat", map[string]any{})
	if ack.GameID != created.GameID {
		t.Fatalf("heartbeat touched %q, want %q", ack.GameID, created.GameID)
	}
}

func TestHTTPRoutes(t *testing.T) {
	srv, g := newTestServer(t)

	res, err := g.engine.CreateSession("host", "Ana", 3, "", "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{path: "/", status: http.StatusOK, contentType: "text/html", contains: "Impostor v" + releaseVersion},
		{path: "/healthz", status: http.StatusOK, contentType: "text/plain", contains: "Ok"},
		{path: "/version", status: http.StatusOK, contentType: "text/plain", contains: "impostor v" + releaseVersion},
		{path: "/robots.txt", status: http.StatusOK, contentType: "text/plain", contains: "Disallow"},
		{path: "/impostor/categories", status: http.StatusOK, contentType: "application/json", contains: `"id":"animales"`},
		{path: "/impostor/qr/" + res.Session.ID, status: http.StatusOK, contentType: "image/png"},
		{path: "/impostor/qr/NOPE22", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Fatalf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Fatalf("body %q does not contain %q", body, tt.contains)
			}
		})
	}
}
