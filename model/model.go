package model

import (
	"encoding/json"
	"math"
)

// 材料分类
type Category string

const (
	CategoryCladding      Category = "cladding"  // ventilated facade cladding
	CategoryBatten        Category = "batten"    // battens, counter-battens
	CategoryMembrane      Category = "membrane"  // wind / vapor membranes
	CategoryStructure     Category = "structure" // load-bearing, resistive (CLT)
	CategoryPanel         Category = "panel"
	CategoryInteriorPanel Category = "interior_panel"
	CategoryInsulation    Category = "insulation"
	CategoryCore          Category = "core"
	CategoryFinish        Category = "finish"
	CategoryTransition    Category = "transition" // surface air films
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCladding, CategoryBatten, CategoryMembrane, CategoryStructure,
		CategoryPanel, CategoryInteriorPanel, CategoryInsulation, CategoryCore,
		CategoryFinish, CategoryTransition:
		return true
	}
	return false
}

// NonResistive reports whether layers of this category are excluded from the
// resistance sum whatever their thickness.
func (c Category) NonResistive() bool {
	switch c {
	case CategoryCladding, CategoryBatten, CategoryMembrane:
		return true
	}
	return false
}

// 物性参数
type MaterialProperties struct {
	Name                string   `json:"name" yaml:"name"`
	ThermalConductivity *float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // W/(m·K)
	Density             *float64 `json:"density" yaml:"density"`                           // kg/m³
	Category            Category `json:"category" yaml:"category"`
	FixedResistance     *float64 `json:"fixed_resistance,omitempty" yaml:"fixed_resistance"` // m²·K/W
}

// HasConductivity is true when the resistance can be derived from thickness.
func (m MaterialProperties) HasConductivity() bool {
	return m.ThermalConductivity != nil && *m.ThermalConductivity > 0
}

// 墙体中的一层，厚度单位 mm
type Layer struct {
	Material  string  `json:"material" yaml:"material"`
	Thickness float64 `json:"thickness" yaml:"thickness"`
}

type LayerResult struct {
	Material            string   `json:"material"`
	Thickness           float64  `json:"thickness"`
	ThermalConductivity *float64 `json:"thermal_conductivity"`
	Density             *float64 `json:"density"`
	AreaLoad            float64  `json:"area_load"`  // kN/m²
	Resistance          float64  `json:"resistance"` // m²·K/W
	// Contribution is relative to the running total after this layer.
	Contribution float64 `json:"contribution"`
	// ShareOfTotal is relative to the final total resistance.
	ShareOfTotal float64 `json:"share_of_total"`
}

type AssemblyResult struct {
	Layers          []LayerResult `json:"layers"`
	TotalResistance float64       `json:"total_resistance"`
	TotalThickness  float64       `json:"total_thickness"`
	UValue          Transmittance `json:"u_value"`
	Advisories      []Advisory    `json:"advisories,omitempty"`
}

// Transmittance is a U-value in W/(m²·K). +Inf marks an assembly without
// any thermal resistance.
type Transmittance float64

func (t Transmittance) IsInf() bool {
	return math.IsInf(float64(t), 1)
}

// JSON has no infinity, so a degenerate U-value is sent as null.
func (t Transmittance) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(t), 0) || math.IsNaN(float64(t)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(t))
}

func (t *Transmittance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = Transmittance(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = Transmittance(v)
	return nil
}

const AdvisoryIncompleteMaterialData = "incomplete_material_data"

// 非致命提示，附在计算结果上
type Advisory struct {
	Index    int    `json:"index"`
	Material string `json:"material"`
	Code     string `json:"code"`
}

// 预设墙体构造
type Assembly struct {
	Label  string  `json:"label" yaml:"label"`
	Layers []Layer `json:"layers" yaml:"layers"`
}

type Comparison struct {
	Label  string          `json:"label"`
	Result *AssemblyResult `json:"result"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 计算请求：layers 与 assembly 二选一
type ComputeReq struct {
	Layers   []Layer `json:"layers"`
	Assembly string  `json:"assembly"`
}

type CompareReq struct {
	Assemblies []string `json:"assemblies"`
}
