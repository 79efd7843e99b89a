package lo_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/bdfio/bdf.go/lo"
)

func TestComparator(t *testing.T) {
	require.Equal(t, -1, lo.Comparator(1, 2))
	require.Equal(t, 0, lo.Comparator(2, 2))
	require.Equal(t, 1, lo.Comparator(3, 2))
	require.Equal(t, -1, lo.Comparator("a", "b"))
}

func TestPanicOnErr(t *testing.T) {
	require.Equal(t, 42, lo.PanicOnErr(42, nil))
	require.Panics(t, func() {
		lo.PanicOnErr(0, errors.New("boom"))
	})
}

func TestReturn2(t *testing.T) {
	require.Equal(t, "b", lo.Return2("a", "b"))
}
