// Package input handles SDL2 input events and keyboard polling.
package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Key is a tracked keyboard key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyS
	KeyEscape
	KeyF11 // stencil capture
	KeyF12 // screenshot

	keyCount
)

var scancodes = [keyCount]sdl.Scancode{
	KeyLeft:   sdl.SCANCODE_LEFT,
	KeyRight:  sdl.SCANCODE_RIGHT,
	KeyUp:     sdl.SCANCODE_UP,
	KeyDown:   sdl.SCANCODE_DOWN,
	KeyA:      sdl.SCANCODE_A,
	KeyS:      sdl.SCANCODE_S,
	KeyEscape: sdl.SCANCODE_ESCAPE,
	KeyF11:    sdl.SCANCODE_F11,
	KeyF12:    sdl.SCANCODE_F12,
}

var keyNames = map[string]Key{
	"left":   KeyLeft,
	"right":  KeyRight,
	"up":     KeyUp,
	"down":   KeyDown,
	"a":      KeyA,
	"s":      KeyS,
	"escape": KeyEscape,
}

// Keyboard reports whether a key is currently held down.
type Keyboard interface {
	Pressed(k Key) bool
}

// KeySet is a fixed Keyboard snapshot, handy for scripted input.
type KeySet map[Key]bool

// Pressed implements Keyboard.
func (s KeySet) Pressed(k Key) bool {
	return s[k]
}

// ParseKeys builds a KeySet from a comma-separated list of key names
// (left, right, up, down, a, s, escape). Names are case-insensitive.
func ParseKeys(list string) (KeySet, error) {
	set := KeySet{}
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		k, ok := keyNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		set[k] = true
	}
	return set, nil
}

// Event types for the frame loop.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input pumps SDL events and polls the keyboard.
type Input struct {
	events []Event
	cur    [keyCount]bool
	prev   [keyCount]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 4),
	}
}

// Update polls SDL events and snapshots the keyboard.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	i.snapshot(sdl.GetKeyboardState())
	return quit
}

func (i *Input) snapshot(state []uint8) {
	i.prev = i.cur
	for k, code := range scancodes {
		i.cur[k] = int(code) < len(state) && state[code] != 0
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pressed implements Keyboard using the state captured by the last Update.
func (i *Input) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && i.cur[k]
}

// JustPressed reports whether k went down between the last two Updates.
func (i *Input) JustPressed(k Key) bool {
	return i.Pressed(k) && !i.prev[k]
}
