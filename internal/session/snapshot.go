package session

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/cygnus-x1/internal/packbuf"
)

const snapshotVersion uint8 = 1

var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

// snapshot is the wire layout; field order is the byte order.
type snapshot struct {
	Version      uint8
	Mode         Mode
	StageIndex   int32
	Points       int64
	PointsNeeded int64
	ShouldExit   bool
}

// Snapshot encodes the mutable part of the state. The stage table and
// options are not included; they belong to whoever restores it.
func (state *State) Snapshot() ([]byte, error) {
	snap := snapshot{
		Version:      snapshotVersion,
		Mode:         state.mode,
		StageIndex:   int32(state.stageIndex),
		Points:       int64(state.points),
		PointsNeeded: int64(state.pointsNeeded),
		ShouldExit:   state.shouldExit,
	}
	var buf bytes.Buffer
	if err := packbuf.Write(&buf, &snap); err != nil {
		return nil, errors.Wrap(err, "write session snapshot")
	}
	return buf.Bytes(), nil
}

// Restore replaces the state with a snapshot taken by Snapshot. The
// state is left untouched if the snapshot does not hold up against this
// state's stage table.
func (state *State) Restore(data []byte) error {
	r := bytes.NewReader(data)
	var snap snapshot
	if err := packbuf.Read(r, &snap); err != nil {
		return errors.Wrapf(ErrCorruptSnapshot, "read: %v", err)
	}
	if r.Len() != 0 {
		return errors.Wrapf(ErrCorruptSnapshot, "%d trailing bytes", r.Len())
	}
	if snap.Version != snapshotVersion {
		return errors.Wrapf(ErrCorruptSnapshot, "version %d", snap.Version)
	}
	if err := state.validate(snap); err != nil {
		return err
	}
	state.mode = snap.Mode
	state.stageIndex = int(snap.StageIndex)
	state.points = int(snap.Points)
	state.pointsNeeded = int(snap.PointsNeeded)
	state.shouldExit = snap.ShouldExit
	return nil
}

func (state *State) validate(snap snapshot) error {
	n := state.table.Len()
	index := int(snap.StageIndex)
	if snap.Points < 0 {
		return errors.Wrapf(ErrCorruptSnapshot, "negative points %d", snap.Points)
	}
	// points needed is derived, so it has to agree with the table
	expected := int64(state.table.PointsToAdvance(n))
	if def, ok := state.table.Lookup(index); ok {
		expected = int64(def.PointsToAdvance)
	}
	switch snap.Mode {
	case ModeTitle:
		if index != 1 {
			return errors.Wrapf(ErrCorruptSnapshot, "title screen at stage %d", index)
		}
	case ModePlaying:
		if index < 1 {
			return errors.Wrapf(ErrCorruptSnapshot, "playing at stage %d", index)
		}
		if index > n && state.onExhausted == ExhaustGameOver {
			return errors.Wrapf(ErrCorruptSnapshot, "playing at stage %d of %d", index, n)
		}
	case ModeGameOver:
		if index <= n {
			return errors.Wrapf(ErrCorruptSnapshot, "game over at stage %d of %d", index, n)
		}
	default:
		return errors.Wrapf(ErrCorruptSnapshot, "unknown mode %d", snap.Mode)
	}
	if snap.PointsNeeded != expected {
		return errors.Wrapf(ErrCorruptSnapshot, "stage %d needs %d points, snapshot says %d", index, expected, snap.PointsNeeded)
	}
	return nil
}
