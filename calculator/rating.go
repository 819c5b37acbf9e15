package calculator

import "uvalue/model"

// Standard 参考标准及其 U 值上限
type Standard struct {
	Name string  `json:"name"`
	MaxU float64 `json:"max_u"`
}

type Rating struct {
	Standard Standard `json:"standard"`
	Pass     bool     `json:"pass"`
}

func DefaultStandards() []Standard {
	return []Standard{
		{Name: "Passivhaus", MaxU: model.PassivhausMaxU},
		{Name: "MINERGIE", MaxU: model.MinergieMaxU},
		{Name: "CTE", MaxU: model.CTEMaxU},
	}
}

// Rate 判断 U 值是否满足各标准，仅供参考。无穷大的 U 值不满足任何标准
func Rate(u model.Transmittance, standards []Standard) []Rating {
	ratings := make([]Rating, 0, len(standards))
	for _, s := range standards {
		ratings = append(ratings, Rating{
			Standard: s,
			Pass:     !u.IsInf() && float64(u) <= s.MaxU,
		})
	}
	return ratings
}
