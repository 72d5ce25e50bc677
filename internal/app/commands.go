package app

import (
	"errors"
	"time"
)

// ErrChannelClosed indicates an input channel was disconnected.
var ErrChannelClosed = errors.New("input channel closed")

// CommandKind defines a tray command.
type CommandKind int

const (
	CommandQuit CommandKind = iota
	CommandRestartWork
	CommandSkipWork
)

func (kind CommandKind) String() string {
	switch kind {
	case CommandQuit:
		return "quit"
	case CommandRestartWork:
		return "restart_work"
	case CommandSkipWork:
		return "skip_work"
	default:
		return "unknown"
	}
}

// Command is a discrete request from the tray menu.
// By is only used by CommandSkipWork.
type Command struct {
	Kind CommandKind
	By   time.Duration
}

// Quit asks the loop to stop after the current tick.
func Quit() Command {
	return Command{Kind: CommandQuit}
}

// RestartWork starts a fresh work phase.
func RestartWork() Command {
	return Command{Kind: CommandRestartWork}
}

// SkipWork moves the current phase forward by the given amount.
func SkipWork(by time.Duration) Command {
	return Command{Kind: CommandSkipWork, By: by}
}

// TrySend delivers value without blocking. A full channel drops it.
func TrySend[T any](ch chan<- T, value T) bool {
	select {
	case ch <- value:
		return true
	default:
		return false
	}
}

// tryReceive polls ch once. An empty channel is not an error.
func tryReceive[T any](ch <-chan T) (T, bool, error) {
	select {
	case value, ok := <-ch:
		if !ok {
			var zero T
			return zero, false, ErrChannelClosed
		}
		return value, true, nil
	default:
		var zero T
		return zero, false, nil
	}
}
