package catalog

import "uvalue/model"

// 材料名称
const (
	VerticalCladding   = "Vertikalschalung Fi/Ta"
	CounterBatten      = "Kreuzrost Fi/Ta"
	VentilationBatten  = "Holzrost Fi/Ta (Hinterlüftung)"
	GypsumFibreBoard   = "Gipsfaserplatte Typ F"
	MineralWool        = "Mineralwolldämmung"
	MineralWoolDissco  = "Mineralwolldämmung Dissco"
	StekoModule        = "Steko-Modul ausgeflockt"
	PlasterBoard       = "Gipskartonplatte"
	WoodFibreBoard     = "Holzweichfaserplatte"
	ClayPlaster        = "Lehmputz"
	CLT                = "CLT Fi/Ta"
	ExteriorTransition = "Übergang a"
	InteriorTransition = "Übergang i"
	FacadeMembrane     = "Fassadenbahn"
	VaporBarrier       = "Dampfbremse"
)

func f(v float64) *float64 {
	return &v
}

// DefaultMaterials 材料参数，λ 与密度来自产品数据表，
// 表面换热阻取常用假设值 (Rse = 1/25, Rsi = 0.125)
func DefaultMaterials() []model.MaterialProperties {
	return []model.MaterialProperties{
		{Name: VerticalCladding, ThermalConductivity: f(0.12), Density: f(470), Category: model.CategoryCladding},
		{Name: CounterBatten, ThermalConductivity: f(0.12), Density: f(470), Category: model.CategoryBatten},
		{Name: VentilationBatten, ThermalConductivity: f(0.12), Density: f(470), Category: model.CategoryBatten},
		{Name: GypsumFibreBoard, ThermalConductivity: f(0.32), Density: f(1150), Category: model.CategoryPanel},
		{Name: MineralWool, ThermalConductivity: f(0.035), Density: f(38), Category: model.CategoryInsulation},
		{Name: MineralWoolDissco, ThermalConductivity: f(0.04), Density: f(150), Category: model.CategoryInsulation},
		{Name: StekoModule, ThermalConductivity: f(0.073), Density: f(260), Category: model.CategoryCore},
		{Name: PlasterBoard, ThermalConductivity: f(0.21), Density: f(650), Category: model.CategoryInteriorPanel},
		{Name: WoodFibreBoard, ThermalConductivity: f(0.04), Density: f(115), Category: model.CategoryInsulation},
		{Name: ClayPlaster, ThermalConductivity: f(0.6), Density: f(1500), Category: model.CategoryFinish},
		{Name: CLT, ThermalConductivity: f(0.12), Density: f(470), Category: model.CategoryStructure},

		{Name: ExteriorTransition, Category: model.CategoryTransition, FixedResistance: f(0.04)},
		{Name: InteriorTransition, Category: model.CategoryTransition, FixedResistance: f(0.125)},
		{Name: FacadeMembrane, Category: model.CategoryMembrane},
		{Name: VaporBarrier, Category: model.CategoryMembrane},
	}
}

// Default 内置材料库
func Default() *Catalog {
	c, err := New(DefaultMaterials())
	if err != nil {
		panic(err)
	}
	return c
}
