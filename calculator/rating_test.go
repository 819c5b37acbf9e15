package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"uvalue/model"
)

func TestRate(t *testing.T) {
	ratings := Rate(0.18, DefaultStandards())
	require.Len(t, ratings, 3)
	require.Equal(t, "Passivhaus", ratings[0].Standard.Name)
	require.False(t, ratings[0].Pass)
	require.True(t, ratings[1].Pass)
	require.True(t, ratings[2].Pass)

	for _, r := range Rate(model.Transmittance(math.Inf(1)), DefaultStandards()) {
		require.False(t, r.Pass)
	}
}

func TestRate_Boundary(t *testing.T) {
	passivhaus := []Standard{{Name: "Passivhaus", MaxU: model.PassivhausMaxU}}
	require.True(t, Rate(0.15, passivhaus)[0].Pass)
	require.True(t, Rate(0.14, passivhaus)[0].Pass)
	require.False(t, Rate(0.151, passivhaus)[0].Pass)
}
