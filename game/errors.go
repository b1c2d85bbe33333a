/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package game

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	// Input errors
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeInvalidCategory Code = "INVALID_CATEGORY"
	CodeEmptyGuess      Code = "EMPTY_GUESS"

	// Lookup errors
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
	CodePlayerNotFound  Code = "PLAYER_NOT_FOUND"
	CodeInvalidTarget   Code = "INVALID_TARGET"

	// Join errors
	CodePasswordMismatch   Code = "PASSWORD_MISMATCH"
	CodeDuplicateName      Code = "DUPLICATE_NAME"
	CodeSessionFull        Code = "SESSION_FULL"
	CodeGameAlreadyStarted Code = "GAME_ALREADY_STARTED"
	CodeAlreadyJoined      Code = "ALREADY_JOINED"

	// Permission errors
	CodeNotHost            Code = "NOT_HOST"
	CodeNotYourTurn        Code = "NOT_YOUR_TURN"
	CodeImpostorCannotVote Code = "IMPOSTOR_CANNOT_VOTE"
	CodeCannotVoteSelf     Code = "CANNOT_VOTE_SELF"
	CodeNotImpostor        Code = "NOT_IMPOSTOR"

	// Phase errors
	CodeAlreadyStarted     Code = "ALREADY_STARTED"
	CodeLobbyNotFull       Code = "LOBBY_NOT_FULL"
	CodeNotEnoughPlayers   Code = "NOT_ENOUGH_PLAYERS"
	CodeNotInRoundsPhase   Code = "NOT_IN_ROUNDS_PHASE"
	CodeNotVotingPhase     Code = "NOT_VOTING_PHASE"
	CodeMatchNotFinished   Code = "MATCH_NOT_FINISHED"
	CodeNotStartedYet      Code = "NOT_STARTED_YET"
	CodeNoConnectedPlayers Code = "NO_CONNECTED_PLAYERS"

	// CodeInternal marks a broken invariant rather than a rule violation.
	CodeInternal Code = "INTERNAL"
)

// Error is a rule violation the requesting player should see verbatim.
// It never leaves the session modified.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is comparisons. Only the code is compared.
var (
	ErrValidation         = newError(CodeValidation, "Datos inválidos.")
	ErrInvalidCategory    = newError(CodeInvalidCategory, "La categoría seleccionada no existe.")
	ErrEmptyGuess         = newError(CodeEmptyGuess, "Debes escribir una palabra.")
	ErrSessionNotFound    = newError(CodeSessionNotFound, "La partida no existe.")
	ErrPlayerNotFound     = newError(CodePlayerNotFound, "No formas parte de esta partida.")
	ErrInvalidTarget      = newError(CodeInvalidTarget, "Jugador objetivo inválido.")
	ErrPasswordMismatch   = newError(CodePasswordMismatch, "La contraseña no coincide.")
	ErrDuplicateName      = newError(CodeDuplicateName, "Ese nombre ya está en uso dentro de la partida.")
	ErrSessionFull        = newError(CodeSessionFull, "La partida está llena.")
	ErrGameAlreadyStarted = newError(CodeGameAlreadyStarted, "La partida ya inició.")
	ErrAlreadyJoined      = newError(CodeAlreadyJoined, "Ya estás en esta partida.")
	ErrNotHost            = newError(CodeNotHost, "Solo la persona anfitriona puede hacer esto.")
	ErrNotYourTurn        = newError(CodeNotYourTurn, "No es tu turno en este momento.")
	ErrImpostorCannotVote = newError(CodeImpostorCannotVote, "El impostor no vota, debe escribir su conjetura.")
	ErrCannotVoteSelf     = newError(CodeCannotVoteSelf, "No puedes votar por ti mismo.")
	ErrNotImpostor        = newError(CodeNotImpostor, "Solo el impostor puede adivinar.")
	ErrAlreadyStarted     = newError(CodeAlreadyStarted, "La partida ya comenzó.")
	ErrLobbyNotFull       = newError(CodeLobbyNotFull, "Aún faltan jugadores para comenzar.")
	ErrNotEnoughPlayers   = errorf(CodeNotEnoughPlayers, "Se necesitan al menos %d jugadores conectados.", MinPlayers)
	ErrNotInRoundsPhase   = newError(CodeNotInRoundsPhase, "No estamos en la fase de rondas.")
	ErrNotVotingPhase     = newError(CodeNotVotingPhase, "Aún no estamos votando.")
	ErrMatchNotFinished   = newError(CodeMatchNotFinished, "Primero deben terminar la partida actual.")
	ErrNotStartedYet      = newError(CodeNotStartedYet, "Necesitas iniciar la partida primero.")
	ErrNoConnectedPlayers = newError(CodeNoConnectedPlayers, "No hay jugadores conectados para asignar roles.")
)
