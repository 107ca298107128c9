// Package console is the ebiten-backed host frontend: it owns the
// window, polls the keyboard into controller 1's shift register
// (controller 2 has no key mapping and stays unpressed), and turns each completed frame's PPU state into pixels.
// None of this is part of the emulator core; it's the one concrete
// collaborator the core's frame callback talks to.
package console

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/halvard/nescore/bus"
	"github.com/halvard/nescore/cartridge"
	"github.com/halvard/nescore/cpu"
	"github.com/halvard/nescore/joypad"
	"github.com/halvard/nescore/ppu"
)

// buttonKeys maps the fixed controller shift order (A, B, Select,
// Start, Up, Down, Left, Right) onto ebiten keys.
var buttonKeys = [8]ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// Console implements ebiten.Game, running the CPU on a background
// goroutine and displaying whatever frame it last produced.
type Console struct {
	bus *bus.Bus
	cpu *cpu.CPU

	mu      sync.Mutex
	frame   *image.RGBA
	pending [8]bool // key state captured by Update, applied in the frame callback
	runErr  error
}

// New constructs a console for the given cartridge. trace, if
// non-nil, receives a snapshot before every instruction.
func New(cart *cartridge.Cartridge, trace cpu.TraceSink) (*Console, error) {
	c := &Console{}

	b, err := bus.New(cart, c.onFrame)
	if err != nil {
		return nil, err
	}
	c.bus = b
	c.cpu = cpu.New(b)
	c.cpu.Reset()

	c.frame = image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))

	go c.run(trace)
	return c, nil
}

func (c *Console) run(trace cpu.TraceSink) {
	var err error
	if trace != nil {
		err = c.cpu.RunWithTrace(trace)
	} else {
		err = c.cpu.Run()
	}

	c.mu.Lock()
	c.runErr = err
	c.mu.Unlock()
}

// onFrame is the bus's per-frame callback: it applies the button
// state Update captured and renders the just-completed frame.
func (c *Console) onFrame(view ppu.View, pad1, pad2 *joypad.Joypad) {
	c.mu.Lock()
	keys := c.pending
	c.mu.Unlock()

	for i, pressed := range keys {
		pad1.SetButtonPressed(joypad.Button(i), pressed)
	}
	_ = pad2 // a second controller has no input source yet; left unpressed

	frame := renderFrame(view)

	c.mu.Lock()
	c.frame = frame
	c.mu.Unlock()
}

// Layout implements ebiten.Game.
func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Update implements ebiten.Game: it samples the keyboard for the
// next frame the background CPU goroutine renders.
func (c *Console) Update() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.runErr != nil {
		return c.runErr
	}

	for i, key := range buttonKeys {
		c.pending[i] = ebiten.IsKeyPressed(key)
	}
	return nil
}

// Draw implements ebiten.Game: it blits the most recently rendered
// frame onto the window.
func (c *Console) Draw(screen *ebiten.Image) {
	c.mu.Lock()
	frame := c.frame
	c.mu.Unlock()

	img := ebiten.NewImageFromImage(frame)
	screen.DrawImage(img, nil)
}

// Run blocks until the ebiten window is closed.
func Run(ctx context.Context, cart *cartridge.Cartridge, trace cpu.TraceSink) error {
	c, err := New(cart, trace)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(c)
}
