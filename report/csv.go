package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"uvalue/model"
)

// 导出格式：分号分隔，逗号作为小数点
const separator = ';'

var comparisonHeader = []string{"Configuración", "U-Value", "Espesor (mm)", "Resistencia (m²K/W)"}

var layerHeader = []string{
	"Capa", "Espesor (mm)", "λ (W/mK)", "Densidad (kg/m³)",
	"Carga (kN/m²)", "R (m²K/W)", "Contribución (%)",
}

// WriteComparisonCSV 导出对比结果，每个构造一行
func WriteComparisonCSV(w io.Writer, comparisons []model.Comparison) error {
	cw := newWriter(w)
	if err := cw.Write(comparisonHeader); err != nil {
		return err
	}
	for _, c := range comparisons {
		record := []string{
			c.Label,
			transmittance(c.Result.UValue),
			decimal(c.Result.TotalThickness),
			decimal(c.Result.TotalResistance),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLayersCSV 导出单个构造的分层明细
func WriteLayersCSV(w io.Writer, result *model.AssemblyResult) error {
	cw := newWriter(w)
	if err := cw.Write(layerHeader); err != nil {
		return err
	}
	for _, l := range result.Layers {
		record := []string{
			l.Material,
			decimal(l.Thickness),
			optional(l.ThermalConductivity),
			optional(l.Density),
			decimal(l.AreaLoad),
			decimal(l.Resistance),
			decimal(l.Contribution),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = separator
	return cw
}

func decimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal(*v)
}

func transmittance(u model.Transmittance) string {
	if u.IsInf() {
		return "inf"
	}
	return decimal(float64(u))
}
