package randnum

import (
	"bytes"
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/robalobadob/roshambo/internal/rng"
	"github.com/robalobadob/roshambo/internal/rng/mocks"
)

func TestDraw_MapsSourceValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	gomock.InOrder(
		src.EXPECT().IntN(MaxNumber-MinNumber).Return(98),
		src.EXPECT().Uint64().Return(uint64(math.MaxUint32)),
		src.EXPECT().Float64().Return(0.25),
		src.EXPECT().Uint64().Return(uint64(3)),
	)

	got := Draw(src)
	want := Sample{Number: 99, Int: -1, Float: 0.25, Bool: true}
	if got != want {
		t.Fatalf("Draw = %+v, want %+v", got, want)
	}
}

func TestDraw_InRange(t *testing.T) {
	src := rng.New(2024)
	for i := 0; i < 1000; i++ {
		s := Draw(src)
		if s.Number < MinNumber || s.Number >= MaxNumber {
			t.Fatalf("Number %d outside [%d, %d)", s.Number, MinNumber, MaxNumber)
		}
		if s.Float < 0 || s.Float >= 1 {
			t.Fatalf("Float %v outside [0, 1)", s.Float)
		}
	}
}

func TestSample_Print(t *testing.T) {
	var buf bytes.Buffer
	s := Sample{Number: 42, Int: -7, Float: 0.5, Bool: false}
	if err := s.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "42\n-7\n0.5\nfalse\n"
	if buf.String() != want {
		t.Errorf("Print wrote %q, want %q", buf.String(), want)
	}
}
