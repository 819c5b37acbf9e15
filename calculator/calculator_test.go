package calculator

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"uvalue/catalog"
	"uvalue/model"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	return NewCalculator(catalog.Default(), DefaultConfig())
}

func ptr(v float64) *float64 {
	return &v
}

func TestCompute_Scenario(t *testing.T) {
	c := newTestCalculator(t)
	res, err := c.Compute([]model.Layer{
		{Material: catalog.VerticalCladding, Thickness: 24},
		{Material: catalog.CounterBatten, Thickness: 48},
		{Material: catalog.ExteriorTransition, Thickness: 0},
		{Material: catalog.MineralWool, Thickness: 60},
		{Material: catalog.InteriorTransition, Thickness: 0},
	})
	require.NoError(t, err)
	require.Len(t, res.Layers, 5)

	wantR := []float64{0, 0, 0.04, 0.06 / 0.035, 0.125}
	for i, want := range wantR {
		require.InDelta(t, want, res.Layers[i].Resistance, 1e-9, "layer %d", i)
	}
	require.InDelta(t, 1.8793, res.TotalResistance, 1e-4)
	require.InDelta(t, 0.532, float64(res.UValue), 1e-3)
	require.Equal(t, 132.0, res.TotalThickness)
	require.Empty(t, res.Advisories)

	// 累计贡献率
	require.Equal(t, 0.0, res.Layers[0].Contribution)
	require.Equal(t, 0.0, res.Layers[1].Contribution)
	require.InDelta(t, 100, res.Layers[2].Contribution, 1e-9)
	require.InDelta(t, (0.06/0.035)/(0.04+0.06/0.035)*100, res.Layers[3].Contribution, 1e-9)
	require.InDelta(t, 0.125/res.TotalResistance*100, res.Layers[4].Contribution, 1e-9)

	// 相对最终总热阻的占比加起来是 100%
	var share float64
	for _, l := range res.Layers {
		share += l.ShareOfTotal
	}
	require.InDelta(t, 100, share, 1e-9)

	// 面荷载
	require.InDelta(t, 0.1128, res.Layers[0].AreaLoad, 1e-12)
	require.InDelta(t, 0.0228, res.Layers[3].AreaLoad, 1e-12)
	require.Equal(t, 0.0, res.Layers[2].AreaLoad)
	require.Nil(t, res.Layers[2].ThermalConductivity)
	require.Nil(t, res.Layers[2].Density)
}

func TestCompute_ConductivityRule(t *testing.T) {
	cat, err := catalog.New([]model.MaterialProperties{
		{Name: "Wool", ThermalConductivity: ptr(0.035), Category: model.CategoryInsulation},
	})
	require.NoError(t, err)

	res, err := NewCalculator(cat, DefaultConfig()).Compute([]model.Layer{{Material: "Wool", Thickness: 100}})
	require.NoError(t, err)
	require.InDelta(t, 2.857142857, res.Layers[0].Resistance, 1e-6)
	require.InDelta(t, 0.35, float64(res.UValue), 1e-9)
}

func TestCompute_NonResistiveAnyThickness(t *testing.T) {
	c := newTestCalculator(t)
	for _, name := range []string{
		catalog.VerticalCladding,
		catalog.CounterBatten,
		catalog.VentilationBatten,
		catalog.FacadeMembrane,
		catalog.VaporBarrier,
	} {
		for _, d := range []float64{0, 1, 48, 10000} {
			res, err := c.Compute([]model.Layer{{Material: name, Thickness: d}})
			require.NoError(t, err)
			require.Equal(t, 0.0, res.Layers[0].Resistance, "%s %v mm", name, d)
			require.Empty(t, res.Advisories)
		}
	}
}

func TestCompute_FixedResistanceAnyThickness(t *testing.T) {
	c := newTestCalculator(t)
	tests := []struct {
		name string
		want float64
	}{
		{name: catalog.ExteriorTransition, want: 0.04},
		{name: catalog.InteriorTransition, want: 0.125},
	}
	for _, tt := range tests {
		for _, d := range []float64{0, 5, 250} {
			res, err := c.Compute([]model.Layer{{Material: tt.name, Thickness: d}})
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Layers[0].Resistance)
		}
	}
}

func TestCompute_RulePrecedence(t *testing.T) {
	// 分类优先于固定热阻，固定热阻优先于导热系数
	cat, err := catalog.New([]model.MaterialProperties{
		{Name: "batten with R", ThermalConductivity: ptr(0.12), Category: model.CategoryBatten, FixedResistance: ptr(0.5)},
		{Name: "film with λ", ThermalConductivity: ptr(0.1), Category: model.CategoryTransition, FixedResistance: ptr(0.2)},
		{Name: "CLT", ThermalConductivity: ptr(0.12), Category: model.CategoryStructure},
	})
	require.NoError(t, err)
	res, err := NewCalculator(cat, DefaultConfig()).Compute([]model.Layer{
		{Material: "batten with R", Thickness: 40},
		{Material: "film with λ", Thickness: 100},
		{Material: "CLT", Thickness: 120},
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Layers[0].Resistance)
	require.Equal(t, 0.2, res.Layers[1].Resistance)
	require.InDelta(t, 1.0, res.Layers[2].Resistance, 1e-12)
}

func TestCompute_Empty(t *testing.T) {
	res, err := newTestCalculator(t).Compute(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.TotalResistance)
	require.Equal(t, 0.0, res.TotalThickness)
	require.True(t, math.IsInf(float64(res.UValue), 1))
	require.Empty(t, res.Layers)
}

func TestCompute_AllZeroResistance(t *testing.T) {
	res, err := newTestCalculator(t).Compute([]model.Layer{
		{Material: catalog.VerticalCladding, Thickness: 24},
		{Material: catalog.FacadeMembrane, Thickness: 1},
	})
	require.NoError(t, err)
	require.True(t, res.UValue.IsInf())
	require.Equal(t, 25.0, res.TotalThickness)
	for _, l := range res.Layers {
		require.Equal(t, 0.0, l.Contribution)
		require.Equal(t, 0.0, l.ShareOfTotal)
	}
}

func TestCompute_Errors(t *testing.T) {
	c := newTestCalculator(t)
	tests := []struct {
		name       string
		layers     []model.Layer
		wantErrIs  error
		wantErrMsg string
		checkErr   func(t *testing.T, err error)
	}{
		{
			name: "unknown material",
			layers: []model.Layer{
				{Material: catalog.MineralWool, Thickness: 60},
				{Material: "Unobtainium", Thickness: 10},
			},
			wantErrIs:  model.ErrUnknownMaterial,
			wantErrMsg: `layer 1: unknown material "Unobtainium"`,
			checkErr: func(t *testing.T, err error) {
				var e *UnknownMaterialError
				require.ErrorAs(t, err, &e)
				require.Equal(t, 1, e.Index)
				require.Equal(t, "Unobtainium", e.Name)
			},
		},
		{
			name:       "negative thickness",
			layers:     []model.Layer{{Material: catalog.MineralWool, Thickness: -5}},
			wantErrIs:  model.ErrInvalidThickness,
			wantErrMsg: "layer 0: invalid thickness -5",
		},
		{
			name:      "NaN thickness",
			layers:    []model.Layer{{Material: catalog.MineralWool, Thickness: math.NaN()}},
			wantErrIs: model.ErrInvalidThickness,
		},
		{
			name: "failure after valid layers",
			layers: []model.Layer{
				{Material: catalog.ExteriorTransition, Thickness: 0},
				{Material: catalog.MineralWool, Thickness: 60},
				{Material: catalog.PlasterBoard, Thickness: math.Inf(1)},
			},
			wantErrIs: model.ErrInvalidThickness,
			checkErr: func(t *testing.T, err error) {
				var e *InvalidThicknessError
				require.ErrorAs(t, err, &e)
				require.Equal(t, 2, e.Index)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Compute(tt.layers)
			require.Nil(t, res)
			require.ErrorIs(t, err, tt.wantErrIs)
			if tt.wantErrMsg != "" {
				require.EqualError(t, err, tt.wantErrMsg)
			}
			if tt.checkErr != nil {
				tt.checkErr(t, err)
			}
		})
	}
}

func TestCompute_IncompleteMaterialData(t *testing.T) {
	cat, err := catalog.New([]model.MaterialProperties{
		{Name: "Mystery board", Density: ptr(600), Category: model.CategoryPanel},
		{Name: "Wool", ThermalConductivity: ptr(0.04), Category: model.CategoryInsulation},
	})
	require.NoError(t, err)
	layers := []model.Layer{
		{Material: "Wool", Thickness: 40},
		{Material: "Mystery board", Thickness: 20},
	}

	res, err := NewCalculator(cat, DefaultConfig()).Compute(layers)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Layers[1].Resistance)
	require.InDelta(t, 0.12, res.Layers[1].AreaLoad, 1e-12)
	require.Equal(t, []model.Advisory{
		{Index: 1, Material: "Mystery board", Code: model.AdvisoryIncompleteMaterialData},
	}, res.Advisories)

	strict := DefaultConfig()
	strict.StrictMaterialData = true
	res, err = NewCalculator(cat, strict).Compute(layers)
	require.Nil(t, res)
	require.ErrorIs(t, err, model.ErrIncompleteMaterialData)
}

func TestCompute_Idempotent(t *testing.T) {
	c := newTestCalculator(t)
	asm := catalog.DefaultAssemblySet(catalog.Default())
	for _, a := range asm.All() {
		first, err := c.Compute(a.Layers)
		require.NoError(t, err)
		second, err := c.Compute(a.Layers)
		require.NoError(t, err)
		require.Equal(t, first, second, a.Label)
	}
}

func TestCompute_DefaultAssemblies(t *testing.T) {
	c := newTestCalculator(t)
	asm := catalog.DefaultAssemblySet(catalog.Default())

	w1, err := asm.Get("W_01 - Gipsfaserplatte aussenseitig")
	require.NoError(t, err)
	res, err := c.Compute(w1.Layers)
	require.NoError(t, err)
	require.InDelta(t, 7.117941536, res.TotalResistance, 1e-6)
	require.InDelta(t, 0.140490055, float64(res.UValue), 1e-6)
	require.Equal(t, 439.0, res.TotalThickness)
	require.True(t, Rate(res.UValue, DefaultStandards())[0].Pass)

	w5, err := asm.Get("W_05 - Variante con Lehmputz")
	require.NoError(t, err)
	res, err = c.Compute(w5.Layers)
	require.NoError(t, err)
	require.InDelta(t, 7.079399870, res.TotalResistance, 1e-6)
	require.Equal(t, 400.0, res.TotalThickness)
}

func TestCompute_PermutationKeepsTotals(t *testing.T) {
	faker := gofakeit.New(42)
	names := catalog.Default().Names()
	c := newTestCalculator(t)

	for round := 0; round < 50; round++ {
		n := faker.IntRange(2, 12)
		layers := make([]model.Layer, n)
		for i := range layers {
			layers[i] = model.Layer{
				Material:  names[faker.IntRange(0, len(names)-1)],
				Thickness: float64(faker.IntRange(0, 300)),
			}
		}
		shuffled := append([]model.Layer(nil), layers...)
		faker.ShuffleAnySlice(shuffled)

		a, err := c.Compute(layers)
		require.NoError(t, err)
		b, err := c.Compute(shuffled)
		require.NoError(t, err)

		require.InDelta(t, a.TotalResistance, b.TotalResistance, 1e-9)
		require.Equal(t, a.TotalThickness, b.TotalThickness)
		if a.UValue.IsInf() {
			require.True(t, b.UValue.IsInf())
		} else {
			require.InDelta(t, float64(a.UValue), float64(b.UValue), 1e-9)
		}
	}
}

func TestCompute_OrderChangesContribution(t *testing.T) {
	c := newTestCalculator(t)
	layers := []model.Layer{
		{Material: catalog.ExteriorTransition, Thickness: 0},
		{Material: catalog.MineralWool, Thickness: 60},
		{Material: catalog.InteriorTransition, Thickness: 0},
	}
	reversed := []model.Layer{layers[2], layers[1], layers[0]}

	a, err := c.Compute(layers)
	require.NoError(t, err)
	b, err := c.Compute(reversed)
	require.NoError(t, err)

	require.InDelta(t, a.TotalResistance, b.TotalResistance, 1e-12)
	require.NotEqual(t, a.Layers[0].Contribution, b.Layers[2].Contribution)
	require.InDelta(t, 100, a.Layers[0].Contribution, 1e-9)
	require.InDelta(t, 0.04/b.TotalResistance*100, b.Layers[2].Contribution, 1e-9)
}
