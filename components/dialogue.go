package components

import (
	"github.com/automoto/durhamtour/dialogue"
	"github.com/yohamta/donburi"
)

// PendingAction is what a confirmed prompt will do.
type PendingAction int

const (
	PendingNone PendingAction = iota
	PendingCollect
	PendingInvestigate
)

// DialogueStateData tracks the prompt strip from the core's side.
type DialogueStateData struct {
	Current dialogue.Prompt
	Pending PendingAction
	Target  *donburi.Entry
}

var DialogueState = donburi.NewComponentType[DialogueStateData]()
