package calculator

import (
	log "github.com/sirupsen/logrus"

	"uvalue/model"
)

type rule int

const (
	ruleNonResistive rule = iota // 龙骨、挂板、防水透气膜、隔汽层
	ruleFixed                    // 表面换热阻
	ruleConductivity             // d / λ
	ruleFallback                 // 数据不完整
)

func (r rule) String() string {
	switch r {
	case ruleNonResistive:
		return "non_resistive"
	case ruleFixed:
		return "fixed"
	case ruleConductivity:
		return "conductivity"
	default:
		return "fallback"
	}
}

// resistance 单层热阻 m²·K/W，按顺序匹配第一条规则。thickness 单位 mm
func resistance(m model.MaterialProperties, thickness float64) (float64, rule) {
	var (
		r    float64
		kind rule
	)
	switch {
	case m.Category.NonResistive():
		r, kind = 0, ruleNonResistive
	case m.FixedResistance != nil:
		r, kind = *m.FixedResistance, ruleFixed
	case m.HasConductivity():
		meters := thickness / model.MillimetersPerMeter
		r, kind = meters / *m.ThermalConductivity, ruleConductivity
	default:
		r, kind = 0, ruleFallback
	}
	log.WithFields(log.Fields{
		"material":   m.Name,
		"thickness":  thickness,
		"rule":       kind.String(),
		"resistance": r,
	}).Trace("layer resistance")
	return r, kind
}

// areaLoad 面荷载 kN/m²，仅作参考
func areaLoad(m model.MaterialProperties, thickness float64) float64 {
	if m.Density == nil {
		return 0
	}
	return thickness * *m.Density / model.AreaLoadDivisor
}
