// fontguard serialises every use of the title and gameplay fonts.
//
// Fonts are installed by setup, drawn with by the renderer and closed by
// teardown, possibly from different goroutines. All three go through one
// mutex, and a draw holds it for the whole text draw, not just while
// reading the handle.
package fontguard

import (
	"io"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/renderer"
)

// Slot names one of the two font handles
type Slot uint8

const (
	SlotTitle Slot = iota
	SlotGameplay

	numSlots = 2
)

func (slot Slot) String() string {
	switch slot {
	case SlotTitle:
		return "title font"
	case SlotGameplay:
		return "gameplay font"
	}
	return "slot " + strconv.Itoa(int(slot))
}

var (
	// ErrUnset is returned by With when the slot has no font
	ErrUnset   = errors.New("font not loaded")
	ErrBadSlot = errors.New("no such font slot")
	ErrNilFont = errors.New("cannot install a nil font")
)

type Guard struct {
	mu    sync.Mutex
	fonts [numSlots]renderer.Font
}

// Install puts f into slot, closing whatever was there before.
func (guard *Guard) Install(slot Slot, f renderer.Font) error {
	if slot >= numSlots {
		return errors.Wrapf(ErrBadSlot, "install %v", slot)
	}
	if f == nil {
		return errors.Wrapf(ErrNilFont, "install %v", slot)
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	prev := guard.fonts[slot]
	guard.fonts[slot] = f
	return closeFont(prev)
}

// With calls fn with the font in slot while holding the guard. If the
// slot is empty fn is not called and ErrUnset is returned.
func (guard *Guard) With(slot Slot, fn func(f renderer.Font) error) error {
	if slot >= numSlots {
		return errors.Wrapf(ErrBadSlot, "use %v", slot)
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	f := guard.fonts[slot]
	if f == nil {
		return errors.Wrapf(ErrUnset, "%v", slot)
	}
	return fn(f)
}

// Loaded reports whether slot currently holds a font.
func (guard *Guard) Loaded(slot Slot) bool {
	if slot >= numSlots {
		return false
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	return guard.fonts[slot] != nil
}

// Remove closes and clears a single slot.
func (guard *Guard) Remove(slot Slot) error {
	if slot >= numSlots {
		return errors.Wrapf(ErrBadSlot, "remove %v", slot)
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	f := guard.fonts[slot]
	guard.fonts[slot] = nil
	return closeFont(f)
}

// Close closes and clears both slots. It is safe to call more than once.
func (guard *Guard) Close() error {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	var firstErr error
	for i := len(guard.fonts) - 1; i >= 0; i-- {
		f := guard.fonts[i]
		guard.fonts[i] = nil
		if err := closeFont(f); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "close %v", Slot(i))
		}
	}
	return firstErr
}

func closeFont(f renderer.Font) error {
	if closer, ok := f.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
