package harness

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/scalekit/internal/bounds"
	"github.com/roach88/scalekit/internal/domain"
)

func TestCheckExpect_Values(t *testing.T) {
	out := Outcome{Kind: domain.KindReal, Values: domain.Reals([]float64{0, 0.5, 1})}

	assert.Empty(t, checkExpect(&Expect{Values: []any{0, 0.5, 1}}, out, nil))
	assert.Empty(t, checkExpect(&Expect{Values: []any{0, "0.5000000001", 1}}, out, nil), "within default tolerance")

	msgs := checkExpect(&Expect{Values: []any{0, 0.6, 1}}, out, nil)
	assert.Equal(t, []string{"values[1]: expected 0.6, got 0.5"}, msgs)

	msgs = checkExpect(&Expect{Values: []any{0, 0.6, 1}, Tolerance: 0.2}, out, nil)
	assert.Empty(t, msgs)

	msgs = checkExpect(&Expect{Values: []any{0}}, out, nil)
	assert.Equal(t, []string{"values: expected 1 elements, got 3"}, msgs)
}

func TestCheckExpect_MissingAndInfinite(t *testing.T) {
	out := Outcome{Values: []domain.Value{domain.NA(domain.KindReal), domain.Real(1), domain.Real(math.Inf(1))}}

	assert.Empty(t, checkExpect(&Expect{Values: []any{"NA", 1, "inf"}}, out, nil))
	assert.Len(t, checkExpect(&Expect{Values: []any{0, 1, "inf"}}, out, nil), 1)
	assert.Len(t, checkExpect(&Expect{Values: []any{"NA", 1, 1e308}}, out, nil), 1)
}

func TestCheckExpect_Range(t *testing.T) {
	r := bounds.RealRange(-4, 5)
	out := Outcome{Range: &r}

	assert.Empty(t, checkExpect(&Expect{Range: []any{-4, 5}}, out, nil))
	assert.Len(t, checkExpect(&Expect{Range: []any{-4, 6}}, out, nil), 1)
	assert.Equal(t, []string{"expected a range result"}, checkExpect(&Expect{Range: []any{1, 2}}, Outcome{}, nil))
}

func TestCheckExpect_Bool(t *testing.T) {
	yes := true
	out := Outcome{Bool: &yes}
	assert.Empty(t, checkExpect(&Expect{Bool: boolp(true)}, out, nil))
	assert.Equal(t, []string{"expected false, got true"}, checkExpect(&Expect{Bool: boolp(false)}, out, nil))
	assert.Equal(t, []string{"expected a boolean result"}, checkExpect(&Expect{Bool: boolp(true)}, Outcome{}, nil))
}

func TestCheckExpect_Errors(t *testing.T) {
	structural := domain.NewStructural("bad arity")

	assert.Empty(t, checkExpect(&Expect{Error: "STRUCTURAL"}, Outcome{}, structural))
	assert.Len(t, checkExpect(&Expect{Error: "TYPE_MISMATCH"}, Outcome{}, structural), 1)
	assert.Equal(t, []string{"expected error STRUCTURAL, got none"}, checkExpect(&Expect{Error: "STRUCTURAL"}, Outcome{}, nil))

	msgs := checkExpect(&Expect{Values: []any{1}}, Outcome{}, structural)
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "unexpected error")

	assert.Nil(t, checkExpect(nil, Outcome{}, nil))
	assert.Len(t, checkExpect(nil, Outcome{}, errors.New("boom")), 1)
}

func TestCheckExpect_Instants(t *testing.T) {
	out, err := Execute(Step{Op: "round_month", X: []any{"2000-04-23"}}, domain.KindUnknown)
	assert.NoError(t, err)
	assert.Empty(t, checkExpect(&Expect{Values: []any{"2000-05-01T00:00:00Z"}}, out, nil))
	assert.Len(t, checkExpect(&Expect{Values: []any{"2000-04-01"}}, out, nil), 1)
}
