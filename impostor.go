/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Impostor
//
// Every player is dealt a secret word. Civilians share one word; the impostor
// gets a related but different one. Players take turns describing their word
// for three rounds, then civilians vote on who they think the impostor is while
// the impostor tries to guess the civilian word.
//
// Features:
// - One websocket per browser tab at /impostor/ws; the connection id is the player id
// - Games are created and joined by 6 character code, optionally password protected
// - Players that drop can reconnect by rejoining with the same name
// - Every participant receives its own redacted view of the game after each change
// - Host can restart after results, or re-deal roles and words at any time
// - Idle and abandoned games are swept on a configurable interval
// - QR code per game for sharing the join link, backed by go-qrcode

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/impostor/game"
	"github.com/Seednode/impostor/view"
	"github.com/Seednode/impostor/words"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	writeWait    = 10 * time.Second
	sendBuffer   = 32
	qrSize       = 320
	genericError = "Ocurrió un error inesperado. Inténtalo nuevamente."
)

// Messages coming from clients
type inbound struct {
	Type string          `json:"type"`
	ID   string          `json:"id,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// commandData carries the fields of every command; each command reads the ones it needs.
type commandData struct {
	GameID         string  `json:"gameId"`
	HostName       string  `json:"hostName"`
	PlayerName     string  `json:"playerName"`
	MaxPlayers     float64 `json:"maxPlayers"`
	Password       string  `json:"password"`
	WordCategoryID string  `json:"wordCategoryId"`
	VotedPlayerID  string  `json:"votedPlayerId"`
	Guess          string  `json:"guess"`
}

// Messages sent to clients
type outbound struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

type ackData struct {
	OK     bool      `json:"ok"`
	GameID string    `json:"gameId,omitempty"`
	Error  string    `json:"error,omitempty"`
	Code   game.Code `json:"code,omitempty"`
}

type errorData struct {
	Message string    `json:"message"`
	Code    game.Code `json:"code,omitempty"`
}

type connectedData struct {
	PlayerID string `json:"playerId"`
}

type gameCreatedData struct {
	GameID string `json:"gameId"`
}

type roundStartedData struct {
	Round int `json:"round"`
}

type nextPlayerTurnData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Round      int    `json:"round"`
}

type resultAnnouncedData struct {
	Winner               game.Winner `json:"winner,omitempty"`
	ImpostorID           string      `json:"impostorId"`
	ImpostorGuessCorrect bool        `json:"impostorGuessCorrect"`
}

type Client struct {
	id     string
	conn   *websocket.Conn
	send   chan outbound
	gameID string // guarded by Gateway.mu
}

// Gateway turns websocket commands into engine calls and fans the results out
// to every connected participant.
type Gateway struct {
	cfg     *Config
	engine  *game.Engine
	catalog *words.Catalog

	// mu serializes command handling together with the fan-out it causes, so
	// every client sees notifications in the order they were produced.
	mu      sync.Mutex
	clients map[string]*Client
}

func newGateway(cfg *Config, engine *game.Engine, catalog *words.Catalog) *Gateway {
	return &Gateway{
		cfg:     cfg,
		engine:  engine,
		catalog: catalog,
		clients: make(map[string]*Client),
	}
}

func (g *Gateway) register(c *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.clients[c.id] = c
	g.sendLocked(c, outbound{Type: "connected", Data: connectedData{PlayerID: c.id}})

	logf(g.cfg, "GAMES: Player %s connected", c.id)
}

// unregister treats a dropped connection as a soft leave, so the player can
// come back under the same name.
func (g *Gateway) unregister(c *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.clients[c.id]; !ok {
		return
	}
	delete(g.clients, c.id)
	close(c.send)

	logf(g.cfg, "GAMES: Player %s disconnected", c.id)

	if c.gameID == "" {
		return
	}
	res, err := g.engine.LeaveSession(c.gameID, c.id, true)
	if err != nil {
		logf(g.cfg, "ERROR: Disconnecting %s from game %s: %v", c.id, c.gameID, err)
		return
	}
	g.publishLocked(c.gameID, res)
}

func (g *Gateway) sendLocked(c *Client, msg outbound) {
	select {
	case c.send <- msg:
	default:
		// Slow reader; closing the connection ends its readPump, which unregisters it.
		logf(g.cfg, "GAMES: Dropping player %s with a full send buffer", c.id)
		_ = c.conn.Close()
	}
}

func (g *Gateway) handle(c *Client, msg inbound) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var data commandData
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			g.failLocked(c, msg, decodeError(err))
			return
		}
	}

	data.GameID = strings.ToUpper(strings.TrimSpace(data.GameID))

	gameID, err := g.dispatchLocked(c, msg.Type, data)
	if err != nil {
		g.failLocked(c, msg, err)
		return
	}

	g.sendLocked(c, outbound{Type: "ack", ID: msg.ID, Data: ackData{OK: true, GameID: gameID}})
}

func (g *Gateway) dispatchLocked(c *Client, command string, data commandData) (string, error) {
	var (
		res game.Result
		err error
	)

	switch command {
	case "createGame":
		if data.MaxPlayers != math.Trunc(data.MaxPlayers) {
			return "", &game.Error{Code: game.CodeValidation, Message: "El número de jugadores debe ser un número entero."}
		}
		res, err = g.engine.CreateSession(c.id, data.HostName, int(data.MaxPlayers), data.Password, data.WordCategoryID)
		if err != nil {
			return "", err
		}
		g.moveLocked(c, res.Session.ID)
		logf(g.cfg, "GAMES: Created game %s", c.gameID)

		g.sendLocked(c, outbound{Type: "gameCreated", Data: gameCreatedData{GameID: c.gameID}})
		g.publishLocked(c.gameID, res)
		return c.gameID, nil

	case "joinGame":
		res, err = g.engine.JoinSession(data.GameID, c.id, data.PlayerName, data.Password)
		if err != nil {
			return "", err
		}
		g.moveLocked(c, data.GameID)
		logf(g.cfg, "GAMES: Player %s joined game %s", c.id, data.GameID)

	case "startGame":
		res, err = g.engine.StartGame(data.GameID, c.id)

	case "playerReadyForRound":
		res, err = g.engine.MarkTurnDone(data.GameID, c.id)

	case "castVote":
		res, err = g.engine.CastVote(data.GameID, c.id, data.VotedPlayerID)

	case "impostorGuess":
		res, err = g.engine.SubmitImpostorGuess(data.GameID, c.id, data.Guess)

	case "requestRestart":
		res, err = g.engine.RestartGame(data.GameID, c.id, data.WordCategoryID)

	case "reshuffleGame":
		res, err = g.engine.ReshuffleRolesAndWords(data.GameID, c.id)

	case "leaveGame":
		res, err = g.engine.LeaveSession(data.GameID, c.id, false)
		if err == nil && c.gameID == data.GameID {
			c.gameID = ""
		}

	case "requestState":
		s, err := g.engine.Snapshot(data.GameID)
		if err != nil {
			return "", err
		}
		v, err := view.ForParticipant(s, c.id)
		if err != nil {
			return "", err
		}
		g.sendLocked(c, outbound{Type: "gameUpdated", Data: v})
		return data.GameID, nil

	case "heartbeat":
		gameID := data.GameID
		if gameID == "" {
			gameID = c.gameID
		}
		if gameID == "" {
			return "", nil
		}
		_, err = g.engine.Touch(gameID, c.id)
		return gameID, err

	default:
		return "", &game.Error{Code: game.CodeValidation, Message: fmt.Sprintf("Comando desconocido: %q.", command)}
	}

	if err != nil {
		return "", err
	}
	g.publishLocked(data.GameID, res)
	return data.GameID, nil
}

// moveLocked points c at gameID, leaving whatever other game it was seated in.
func (g *Gateway) moveLocked(c *Client, gameID string) {
	previous := c.gameID
	c.gameID = gameID
	if previous == "" || previous == gameID {
		return
	}

	res, err := g.engine.LeaveSession(previous, c.id, false)
	if err != nil {
		logf(g.cfg, "ERROR: Removing %s from game %s: %v", c.id, previous, err)
		return
	}
	g.publishLocked(previous, res)
}

// publishLocked broadcasts res's events, then pushes a fresh view to everyone
// still seated.
func (g *Gateway) publishLocked(gameID string, res game.Result) {
	if res.Removed {
		logf(g.cfg, "GAMES: Removed empty game %s", gameID)
		return
	}
	s := res.Session
	if s == nil {
		return
	}

	var recipients []*Client
	for _, p := range s.Players {
		if c, ok := g.clients[p.ID]; ok {
			recipients = append(recipients, c)
		}
	}

	for _, ev := range res.Events {
		msg := notification(ev)
		for _, c := range recipients {
			g.sendLocked(c, msg)
		}
	}

	for _, c := range recipients {
		v, err := view.ForParticipant(s, c.id)
		if err != nil {
			logf(g.cfg, "ERROR: Rendering game %s for %s: %v", s.ID, c.id, err)
			continue
		}
		g.sendLocked(c, outbound{Type: "gameUpdated", Data: v})
	}
}

func notification(ev game.Event) outbound {
	switch ev := ev.(type) {
	case game.RoundStarted:
		return outbound{Type: "roundStarted", Data: roundStartedData{Round: ev.Round}}
	case game.TurnStarted:
		return outbound{Type: "nextPlayerTurn", Data: nextPlayerTurnData{
			PlayerID:   ev.PlayerID,
			PlayerName: ev.PlayerName,
			Round:      ev.Round,
		}}
	case game.VotingStarted:
		return outbound{Type: "votingStarted"}
	case game.ResultsReady:
		return outbound{Type: "resultAnnounced", Data: resultAnnouncedData{
			Winner:               ev.Winner,
			ImpostorID:           ev.ImpostorID,
			ImpostorGuessCorrect: ev.ImpostorGuessCorrect,
		}}
	default:
		panic(fmt.Sprintf("unhandled game event %T", ev))
	}
}

// failLocked reports err to c. Rule violations are shown as-is; anything else
// is logged and replaced with a generic message.
func (g *Gateway) failLocked(c *Client, msg inbound, err error) {
	message, code := genericError, game.Code("")

	var domainErr *game.Error
	if errors.As(err, &domainErr) && domainErr.Code != game.CodeInternal {
		message, code = domainErr.Message, domainErr.Code
	} else {
		logf(g.cfg, "ERROR: Handling %s from %s: %v", msg.Type, c.id, err)
	}

	g.sendLocked(c, outbound{Type: "error", Data: errorData{Message: message, Code: code}})
	g.sendLocked(c, outbound{Type: "ack", ID: msg.ID, Data: ackData{Error: message, Code: code}})
}

// decodeError turns malformed or mistyped JSON into a validation error the
// player can see. Any other error is returned unchanged.
func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &game.Error{Code: game.CodeValidation, Message: fmt.Sprintf("Valor inválido para %q.", typeErr.Field)}
	case errors.As(err, &typeErr), errors.As(err, &syntaxErr):
		return &game.Error{Code: game.CodeValidation, Message: "Mensaje mal formado."}
	}
	return err
}

func (g *Gateway) closeAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, c := range g.clients {
		_ = c.conn.Close()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWebsocket(cfg *Config, g *Gateway) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: Upgrading connection from %s: %v", realIP(r), err)
			return
		}
		conn.SetReadLimit(cfg.maxMessageSize)

		client := &Client{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan outbound, sendBuffer),
		}

		g.register(client)

		go client.writePump(cfg.clientTimeout * 9 / 10)
		client.readPump(g)
	}
}

// readPump handles commands until the connection fails or goes quiet. Any
// message or pong within cfg.clientTimeout keeps it alive.
func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.unregister(c)
		_ = c.conn.Close()
	}()

	timeout := g.cfg.clientTimeout
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(timeout))
	})

	for {
		var msg inbound
		if err := c.conn.ReadJSON(&msg); err != nil {
			if invalid := decodeError(err); invalid != err {
				g.mu.Lock()
				g.failLocked(c, msg, invalid)
				g.mu.Unlock()
				continue
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

		g.handle(c, msg)
	}
}

// writePump drains c.send and pings often enough that a live peer always
// answers before its read deadline passes.
func (c *Client) writePump(pingPeriod time.Duration) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func serveCategories(cfg *Config, catalog *words.Catalog, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		body, err := json.Marshal(catalog.Summary())
		if err != nil {
			errs <- err
			http.Error(w, "unable to list categories", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(cfg, w)

		written, err := w.Write(body)
		if err != nil {
			errs <- err
			return
		}

		logf(cfg, "SERVE: Category list (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// serveQR renders a PNG QR code pointing at the join link for :gameid.
func serveQR(cfg *Config, g *Gateway, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if _, err := g.engine.Snapshot(gameID); err != nil {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}

		scheme := cfg.scheme()
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		url := scheme + "://" + r.Host + cfg.prefix + "/?game=" + gameID

		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			errs <- err
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}

func registerImpostorGame(cfg *Config, path string, mux *httprouter.Router, g *Gateway, errs chan<- error) {
	mux.GET(cfg.prefix+path+"/categories", serveCategories(cfg, g.catalog, errs))
	mux.GET(cfg.prefix+path+"/qr/:gameid", serveQR(cfg, g, errs))
	mux.GET(cfg.prefix+path+"/ws", serveWebsocket(cfg, g))
}
