package stage

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultTable(t *testing.T) {
	want := []Definition{
		{Number: 1, PointsToAdvance: 10},
		{Number: 2, PointsToAdvance: 20},
		{Number: 3, PointsToAdvance: 30},
	}
	if Default.Len() != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), Default.Len())
	}
	for _, def := range want {
		got, ok := Default.Lookup(def.Number)
		if !ok || got != def {
			t.Errorf("Lookup(%d) = %+v, %v, expected %+v", def.Number, got, ok, def)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, number := range []int{-1, 0, 4, 100} {
		if _, ok := Default.Lookup(number); ok {
			t.Errorf("Lookup(%d) should fail", number)
		}
	}
}

func TestStagesIsACopy(t *testing.T) {
	stages := Default.Stages()
	stages[0].PointsToAdvance = 999
	if Default.PointsToAdvance(1) != 10 {
		t.Fatalf("mutating Stages() leaked into the table")
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	tests := [][]Definition{
		nil,
		{{Number: 2, PointsToAdvance: 10}},
		{{Number: 1, PointsToAdvance: 10}, {Number: 3, PointsToAdvance: 10}},
		{{Number: 1, PointsToAdvance: -1}},
	}
	for _, stages := range tests {
		if _, err := New(stages...); errors.Cause(err) != ErrInvalidTable {
			t.Errorf("New(%+v) returned %v, expected ErrInvalidTable", stages, err)
		}
	}
}
