// stage is the fixed, ordered table of stages and the points each one
// takes to clear.
package stage

import (
	"strconv"

	"github.com/pkg/errors"
)

var ErrInvalidTable = errors.New("invalid stage table")

// Definition is one row of the stage table
type Definition struct {
	Number          int
	PointsToAdvance int
}

// Table is an immutable, ordered list of stages. The zero value is an
// empty table.
type Table struct {
	stages []Definition
}

// Default is the table the game ships with.
var Default = MustNew(
	Definition{Number: 1, PointsToAdvance: 10},
	Definition{Number: 2, PointsToAdvance: 20},
	Definition{Number: 3, PointsToAdvance: 30},
)

// New copies stages into a Table. Stage numbers must run 1, 2, 3...
// and thresholds must not be negative.
func New(stages ...Definition) (Table, error) {
	if len(stages) == 0 {
		return Table{}, errors.Wrap(ErrInvalidTable, "no stages")
	}
	for i, def := range stages {
		if def.Number != i+1 {
			return Table{}, errors.Wrapf(ErrInvalidTable, "stage at position %d has number %d", i+1, def.Number)
		}
		if def.PointsToAdvance < 0 {
			return Table{}, errors.Wrapf(ErrInvalidTable, "stage %d needs %d points", def.Number, def.PointsToAdvance)
		}
	}
	r := make([]Definition, len(stages))
	copy(r, stages)
	return Table{stages: r}, nil
}

func MustNew(stages ...Definition) Table {
	table, err := New(stages...)
	if err != nil {
		panic(err)
	}
	return table
}

// Len is the number of stages, N.
func (table Table) Len() int {
	return len(table.stages)
}

// Lookup returns the definition for a 1-based stage number.
func (table Table) Lookup(number int) (Definition, bool) {
	if number < 1 || number > len(table.stages) {
		return Definition{}, false
	}
	return table.stages[number-1], true
}

// PointsToAdvance is Lookup for callers that have already bounds-checked.
func (table Table) PointsToAdvance(number int) int {
	def, ok := table.Lookup(number)
	if !ok {
		panic("stage out of range: " + strconv.Itoa(number))
	}
	return def.PointsToAdvance
}

// Stages returns a copy of the table rows.
func (table Table) Stages() []Definition {
	r := make([]Definition, len(table.stages))
	copy(r, table.stages)
	return r
}
