package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"uvalue/model"
)

// MaterialSource 材料库接口
type MaterialSource interface {
	Lookup(name string) (model.MaterialProperties, error)
}

type Config struct {
	Workers    int // 对比计算的 worker 数量
	MaxCompare int // 一次最多对比的构造数量
	// StrictMaterialData turns the zero-resistance fallback for materials
	// without conductivity or fixed resistance into an error.
	StrictMaterialData bool
}

func DefaultConfig() Config {
	return Config{
		Workers:    4,
		MaxCompare: model.DefaultMaxCompare,
	}
}

// Calculator 传热系数计算器，不持有可变状态，可并发使用
type Calculator struct {
	materials MaterialSource
	cfg       Config
}

func NewCalculator(materials MaterialSource, cfg Config) *Calculator {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxCompare <= 0 {
		cfg.MaxCompare = model.DefaultMaxCompare
	}
	return &Calculator{
		materials: materials,
		cfg:       cfg,
	}
}

func (c *Calculator) Config() Config {
	return c.cfg
}

// Compute 计算墙体的热阻和 U 值。
// 任何一层出错都不会返回部分结果。
func (c *Calculator) Compute(layers []model.Layer) (*model.AssemblyResult, error) {
	props, err := c.resolve(layers)
	if err != nil {
		return nil, err
	}

	result := &model.AssemblyResult{
		Layers: make([]model.LayerResult, 0, len(layers)),
	}
	for i, l := range layers {
		m := props[i]
		r, kind := resistance(m, l.Thickness)
		if kind == ruleFallback {
			if c.cfg.StrictMaterialData {
				return nil, &IncompleteMaterialDataError{Index: i, Name: m.Name}
			}
			log.WithFields(log.Fields{
				"index":    i,
				"material": m.Name,
				"category": m.Category,
			}).Warn("incomplete material data, layer counted with zero resistance")
			result.Advisories = append(result.Advisories, model.Advisory{
				Index:    i,
				Material: m.Name,
				Code:     model.AdvisoryIncompleteMaterialData,
			})
		}

		result.TotalResistance += r
		result.TotalThickness += l.Thickness

		// 贡献率按当前累计热阻计算
		contribution := 0.0
		if result.TotalResistance > 0 {
			contribution = r / result.TotalResistance * 100
		}
		result.Layers = append(result.Layers, model.LayerResult{
			Material:            m.Name,
			Thickness:           l.Thickness,
			ThermalConductivity: m.ThermalConductivity,
			Density:             m.Density,
			AreaLoad:            areaLoad(m, l.Thickness),
			Resistance:          r,
			Contribution:        contribution,
		})
	}

	if result.TotalResistance > 0 {
		result.UValue = model.Transmittance(1 / result.TotalResistance)
		for i := range result.Layers {
			result.Layers[i].ShareOfTotal = result.Layers[i].Resistance / result.TotalResistance * 100
		}
	} else {
		result.UValue = model.Transmittance(math.Inf(1))
	}

	log.WithFields(log.Fields{
		"layers":           len(layers),
		"total_resistance": result.TotalResistance,
		"total_thickness":  result.TotalThickness,
		"u_value":          float64(result.UValue),
	}).Debug("assembly computed")
	return result, nil
}

// 先校验全部层，再开始累计
func (c *Calculator) resolve(layers []model.Layer) ([]model.MaterialProperties, error) {
	props := make([]model.MaterialProperties, len(layers))
	for i, l := range layers {
		m, err := c.materials.Lookup(l.Material)
		if err != nil {
			return nil, &UnknownMaterialError{Index: i, Name: l.Material, Err: err}
		}
		if l.Thickness < 0 || math.IsNaN(l.Thickness) || math.IsInf(l.Thickness, 0) {
			return nil, &InvalidThicknessError{Index: i, Value: l.Thickness}
		}
		props[i] = m
	}
	return props, nil
}
