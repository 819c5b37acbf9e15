package catalog

import (
	"fmt"
	"math"

	"uvalue/model"
)

// Assemblies 预设墙体构造，按声明顺序保存，初始化后只读
type Assemblies struct {
	byLabel map[string]model.Assembly
	labels  []string
}

// NewAssemblies checks that every layer of every assembly resolves in cat.
func NewAssemblies(cat *Catalog, assemblies []model.Assembly) (*Assemblies, error) {
	a := &Assemblies{
		byLabel: make(map[string]model.Assembly, len(assemblies)),
		labels:  make([]string, 0, len(assemblies)),
	}
	for _, asm := range assemblies {
		if asm.Label == "" {
			return nil, fmt.Errorf("assembly without label: %w", model.ErrInvalidAssembly)
		}
		if _, ok := a.byLabel[asm.Label]; ok {
			return nil, fmt.Errorf("assembly %q declared twice: %w", asm.Label, model.ErrInvalidAssembly)
		}
		for i, l := range asm.Layers {
			if _, err := cat.Lookup(l.Material); err != nil {
				return nil, fmt.Errorf("assembly %q layer %d: %w", asm.Label, i, err)
			}
			if l.Thickness < 0 || math.IsNaN(l.Thickness) || math.IsInf(l.Thickness, 0) {
				return nil, fmt.Errorf("assembly %q layer %d: %v: %w", asm.Label, i, l.Thickness, model.ErrInvalidThickness)
			}
		}
		a.byLabel[asm.Label] = copyAssembly(asm)
		a.labels = append(a.labels, asm.Label)
	}
	return a, nil
}

// Get 返回的层序列是副本
func (a *Assemblies) Get(label string) (model.Assembly, error) {
	asm, ok := a.byLabel[label]
	if !ok {
		return model.Assembly{}, fmt.Errorf("%q: %w", label, model.ErrUnknownAssembly)
	}
	return copyAssembly(asm), nil
}

func (a *Assemblies) Labels() []string {
	return append([]string(nil), a.labels...)
}

func (a *Assemblies) All() []model.Assembly {
	all := make([]model.Assembly, 0, len(a.labels))
	for _, label := range a.labels {
		all = append(all, copyAssembly(a.byLabel[label]))
	}
	return all
}

func copyAssembly(asm model.Assembly) model.Assembly {
	asm.Layers = append([]model.Layer(nil), asm.Layers...)
	return asm
}

// DefaultAssemblies W_01 ~ W_05，由外向内
func DefaultAssemblies() []model.Assembly {
	return []model.Assembly{
		{
			Label: "W_01 - Gipsfaserplatte aussenseitig",
			Layers: []model.Layer{
				{Material: VerticalCladding, Thickness: 24},
				{Material: CounterBatten, Thickness: 48},
				{Material: ExteriorTransition, Thickness: 0},
				{Material: FacadeMembrane, Thickness: 1},
				{Material: GypsumFibreBoard, Thickness: 15},
				{Material: MineralWool, Thickness: 60},
				{Material: MineralWool, Thickness: 60},
				{Material: VaporBarrier, Thickness: 1},
				{Material: StekoModule, Thickness: 160},
				{Material: MineralWool, Thickness: 40},
				{Material: PlasterBoard, Thickness: 15},
				{Material: PlasterBoard, Thickness: 15},
				{Material: InteriorTransition, Thickness: 0},
			},
		},
		{
			Label: "W_02 - Flumroc Dissco-Platte 60mm",
			Layers: []model.Layer{
				{Material: VerticalCladding, Thickness: 24},
				{Material: CounterBatten, Thickness: 48},
				{Material: ExteriorTransition, Thickness: 0},
				{Material: FacadeMembrane, Thickness: 1},
				{Material: MineralWoolDissco, Thickness: 60},
				{Material: MineralWool, Thickness: 60},
				{Material: VaporBarrier, Thickness: 1},
				{Material: StekoModule, Thickness: 160},
				{Material: MineralWool, Thickness: 40},
				{Material: PlasterBoard, Thickness: 15},
				{Material: PlasterBoard, Thickness: 15},
				{Material: InteriorTransition, Thickness: 0},
			},
		},
		{
			Label: "W_03 - Dissco, sin Vorsatzschale",
			Layers: []model.Layer{
				{Material: VerticalCladding, Thickness: 24},
				{Material: CounterBatten, Thickness: 48},
				{Material: ExteriorTransition, Thickness: 0},
				{Material: FacadeMembrane, Thickness: 1},
				{Material: MineralWoolDissco, Thickness: 60},
				{Material: MineralWool, Thickness: 100},
				{Material: VaporBarrier, Thickness: 1},
				{Material: StekoModule, Thickness: 160},
				{Material: PlasterBoard, Thickness: 15},
				{Material: InteriorTransition, Thickness: 0},
			},
		},
		{
			Label: "W_04 - CLT statt Steko",
			Layers: []model.Layer{
				{Material: VerticalCladding, Thickness: 24},
				{Material: CounterBatten, Thickness: 48},
				{Material: ExteriorTransition, Thickness: 0},
				{Material: FacadeMembrane, Thickness: 1},
				{Material: GypsumFibreBoard, Thickness: 15},
				{Material: MineralWool, Thickness: 60},
				{Material: MineralWool, Thickness: 80},
				{Material: VaporBarrier, Thickness: 1},
				{Material: CLT, Thickness: 120},
				{Material: MineralWool, Thickness: 40},
				{Material: PlasterBoard, Thickness: 15},
				{Material: PlasterBoard, Thickness: 15},
				{Material: InteriorTransition, Thickness: 0},
			},
		},
		{
			Label: "W_05 - Variante con Lehmputz",
			Layers: []model.Layer{
				{Material: VerticalCladding, Thickness: 24},
				{Material: VentilationBatten, Thickness: 30},
				{Material: ExteriorTransition, Thickness: 0},
				{Material: FacadeMembrane, Thickness: 0.5},
				{Material: MineralWoolDissco, Thickness: 60},
				{Material: MineralWool, Thickness: 60},
				{Material: VaporBarrier, Thickness: 0.5},
				{Material: StekoModule, Thickness: 160},
				{Material: WoodFibreBoard, Thickness: 60},
				{Material: ClayPlaster, Thickness: 5},
				{Material: InteriorTransition, Thickness: 0},
			},
		},
	}
}

// DefaultAssemblySet 内置预设构造
func DefaultAssemblySet(cat *Catalog) *Assemblies {
	a, err := NewAssemblies(cat, DefaultAssemblies())
	if err != nil {
		panic(err)
	}
	return a
}
