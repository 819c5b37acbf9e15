package model

// 单位换算
const (
	MillimetersPerMeter = 1000.0
	// mm * kg/m³ / AreaLoadDivisor = kN/m²
	AreaLoadDivisor = 100000.0
)

// 参考 U 值上限, W/(m²·K)
const (
	PassivhausMaxU = 0.15
	MinergieMaxU   = 0.20
	CTEMaxU        = 0.30
)

// 对比模式最多同时对比的构造数量
const DefaultMaxCompare = 3
