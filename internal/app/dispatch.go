package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/spacescene/internal/engine/camera"
	"github.com/Faultbox/spacescene/internal/engine/input"
	"github.com/Faultbox/spacescene/internal/showcase"
)

// command is work the loop must do outside the scene, usually on the GL side.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdResize
	cmdScreenshot
	cmdReloadTextures
)

// dispatcher routes input events to the orbit controls and scene toggles.
type dispatcher struct {
	show *showcase.Showcase

	rotating bool
	panning  bool
	// Pixels moved since the left button went down.
	dragged int
}

// A left press and release within this many pixels is a click, not a drag.
const clickSlop = 2

func newDispatcher(show *showcase.Showcase) *dispatcher {
	return &dispatcher{show: show}
}

var panKeys = map[sdl.Scancode]camera.PanKey{
	sdl.SCANCODE_UP:    camera.PanUp,
	sdl.SCANCODE_DOWN:  camera.PanDown,
	sdl.SCANCODE_LEFT:  camera.PanLeft,
	sdl.SCANCODE_RIGHT: camera.PanRight,
}

func (d *dispatcher) handle(e input.Event) command {
	controls := d.show.Controls

	switch e.Type {
	case input.EventQuit:
		return cmdQuit

	case input.EventWindowResize:
		if e.Width <= 0 || e.Height <= 0 {
			return cmdNone
		}
		d.show.Resize(e.Width, e.Height)
		return cmdResize

	case input.EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			d.rotating = true
			d.dragged = 0
		case sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE:
			d.panning = true
		}

	case input.EventMouseUp:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			if d.rotating && d.dragged <= clickSlop {
				d.show.SelectAt(e.MouseX, e.MouseY)
			}
			d.rotating = false
		case sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE:
			d.panning = false
		}

	case input.EventMouseMove:
		dx, dy := float32(e.DeltaX), float32(e.DeltaY)
		switch {
		case d.panning:
			controls.HandlePan(dx, dy)
		case d.rotating:
			d.dragged += abs(e.DeltaX) + abs(e.DeltaY)
			controls.HandleDrag(dx, dy)
		}

	case input.EventMouseWheel:
		controls.HandleZoom(e.WheelY)

	case input.EventKeyDown:
		if k, ok := panKeys[e.Key]; ok {
			controls.HandleKey(k)
			return cmdNone
		}
		if e.Repeat {
			return cmdNone
		}
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			return cmdQuit
		case sdl.SCANCODE_F12:
			return cmdScreenshot
		case sdl.SCANCODE_F5:
			return cmdReloadTextures
		case sdl.SCANCODE_H:
			d.show.SetHelpersVisible(!d.show.HelpersVisible())
		case sdl.SCANCODE_B:
			d.show.ToggleBounds()
		case sdl.SCANCODE_R:
			controls.Reset()
		}
	}
	return cmdNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
