/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package game

// Event is something a command caused that every participant should hear about.
// The set is closed: RoundStarted, TurnStarted, VotingStarted and ResultsReady.
type Event interface {
	isEvent()
}

type RoundStarted struct {
	Round int
}

type TurnStarted struct {
	PlayerID   string
	PlayerName string
	Round      int
}

type VotingStarted struct{}

type ResultsReady struct {
	Winner               Winner
	ImpostorID           string
	ImpostorGuessCorrect bool
}

func (RoundStarted) isEvent()  {}
func (TurnStarted) isEvent()   {}
func (VotingStarted) isEvent() {}
func (ResultsReady) isEvent()  {}
