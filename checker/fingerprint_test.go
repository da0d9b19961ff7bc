package checker

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *TabularResult {
	return &TabularResult{
		Columns: []string{"id", "name", "salary"},
		Rows: [][]any{
			{int64(1), "Ada", float64(120000)},
			{int64(2), "Grace", float64(130000)},
			{int64(3), "Edsger", float64(110000)},
		},
	}
}

func TestFingerprintOrderIndependence(t *testing.T) {
	base := sampleResult()
	want := FingerprintOf(base)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		permuted := sampleResult()
		rng.Shuffle(len(permuted.Rows), func(a, b int) {
			permuted.Rows[a], permuted.Rows[b] = permuted.Rows[b], permuted.Rows[a]
		})
		got := FingerprintOf(permuted)
		assert.Equal(t, want.Hash, got.Hash)
		assert.Equal(t, want, got)
	}
}

func TestFingerprintContentSensitivity(t *testing.T) {
	base := FingerprintOf(sampleResult())

	changed := sampleResult()
	changed.Rows[1][2] = float64(130001)
	got := FingerprintOf(changed)

	assert.NotEqual(t, base.Hash, got.Hash)
	assert.Equal(t, base.RowCount, got.RowCount)
	assert.Equal(t, base.Columns, got.Columns)
}

func TestFingerprintColumnOrderSignificant(t *testing.T) {
	base := FingerprintOf(sampleResult())

	swapped := &TabularResult{
		Columns: []string{"name", "id", "salary"},
		Rows: [][]any{
			{"Ada", int64(1), float64(120000)},
			{"Grace", int64(2), float64(130000)},
			{"Edsger", int64(3), float64(110000)},
		},
	}
	got := FingerprintOf(swapped)

	assert.NotEqual(t, base.Columns, got.Columns)
	assert.False(t, base.SameShape(got))
}

func TestFingerprintEmptyResults(t *testing.T) {
	a := FingerprintOf(&TabularResult{Columns: []string{"id", "name"}})
	b := FingerprintOf(&TabularResult{Columns: []string{"total"}})

	// Only emptiness matters for the content hash; the schema still
	// shows up in the shape metadata.
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, 0, a.RowCount)
	assert.Equal(t, []string{"id", "name"}, a.Columns)
	assert.Equal(t, 2, a.ColumnCount)
	assert.Equal(t, 1, b.ColumnCount)
}

func TestFingerprintNullsOrderDeterministically(t *testing.T) {
	rows := [][]any{
		{nil, "b"},
		{int64(1), nil},
		{nil, nil},
		{int64(2), "a"},
	}
	base := &TabularResult{Columns: []string{"x", "y"}, Rows: rows}
	want := FingerprintOf(base)

	permuted := &TabularResult{
		Columns: []string{"x", "y"},
		Rows:    [][]any{rows[3], rows[0], rows[2], rows[1]},
	}
	assert.Equal(t, want.Hash, FingerprintOf(permuted).Hash)
}

func TestFingerprintStringFallback(t *testing.T) {
	mixed := &TabularResult{
		Columns: []string{"v"},
		Rows: [][]any{
			{"text"},
			{int64(10)},
			{true},
		},
	}

	fp, fallback := fingerprintResult(mixed)
	require.True(t, fallback)
	require.NotEmpty(t, fp.Hash)

	permuted := &TabularResult{
		Columns: []string{"v"},
		Rows:    [][]any{{true}, {"text"}, {int64(10)}},
	}
	got, fallback := fingerprintResult(permuted)
	assert.True(t, fallback)
	assert.Equal(t, fp.Hash, got.Hash)
}

func TestFingerprintTimeValues(t *testing.T) {
	early := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 7, 15, 18, 30, 0, 0, time.UTC)

	base := &TabularResult{
		Columns: []string{"at"},
		Rows:    [][]any{{late}, {early}},
	}
	permuted := &TabularResult{
		Columns: []string{"at"},
		Rows:    [][]any{{early}, {late}},
	}
	assert.Equal(t, FingerprintOf(base).Hash, FingerprintOf(permuted).Hash)
}

func TestFingerprintHashLength(t *testing.T) {
	fp := FingerprintOf(sampleResult())
	assert.Len(t, fp.Hash, hashLength)
}
