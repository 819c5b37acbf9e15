package catalog

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"uvalue/model"
)

// Catalog 材料库，初始化后只读
type Catalog struct {
	materials map[string]model.MaterialProperties
	names     []string
}

// New 校验并构建材料库，校验只在加载时进行一次
func New(materials []model.MaterialProperties) (*Catalog, error) {
	c := &Catalog{
		materials: make(map[string]model.MaterialProperties, len(materials)),
	}
	for i, m := range materials {
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		if _, ok := c.materials[m.Name]; ok {
			return nil, fmt.Errorf("material %q declared twice: %w", m.Name, model.ErrInvalidMaterial)
		}
		c.materials[m.Name] = clone(m)
		if !m.Category.NonResistive() && m.FixedResistance == nil && !m.HasConductivity() {
			log.WithFields(log.Fields{
				"material": m.Name,
				"category": m.Category,
			}).Warn("material has neither conductivity nor fixed resistance")
		}
	}
	c.names = lo.Keys(c.materials)
	sort.Strings(c.names)
	return c, nil
}

func validate(m model.MaterialProperties) error {
	if m.Name == "" {
		return fmt.Errorf("empty name: %w", model.ErrInvalidMaterial)
	}
	if !m.Category.Valid() {
		return fmt.Errorf("%q: unknown category %q: %w", m.Name, m.Category, model.ErrInvalidMaterial)
	}
	if m.ThermalConductivity != nil && !(*m.ThermalConductivity > 0) {
		return fmt.Errorf("%q: conductivity %v must be positive: %w", m.Name, *m.ThermalConductivity, model.ErrInvalidMaterial)
	}
	if m.Density != nil && !(*m.Density >= 0) {
		return fmt.Errorf("%q: density %v must not be negative: %w", m.Name, *m.Density, model.ErrInvalidMaterial)
	}
	if m.FixedResistance != nil && !(*m.FixedResistance >= 0) {
		return fmt.Errorf("%q: fixed resistance %v must not be negative: %w", m.Name, *m.FixedResistance, model.ErrInvalidMaterial)
	}
	return nil
}

// Lookup 根据名称获取材料
func (c *Catalog) Lookup(name string) (model.MaterialProperties, error) {
	m, ok := c.materials[name]
	if !ok {
		return model.MaterialProperties{}, fmt.Errorf("%q: %w", name, model.ErrUnknownMaterial)
	}
	return clone(m), nil
}

func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Materials returns every material ordered by name.
func (c *Catalog) Materials() []model.MaterialProperties {
	return lo.Map(c.names, func(name string, _ int) model.MaterialProperties {
		return clone(c.materials[name])
	})
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// 指针字段需要深拷贝，保证调用方无法修改材料库
func clone(m model.MaterialProperties) model.MaterialProperties {
	m.ThermalConductivity = copyFloat(m.ThermalConductivity)
	m.Density = copyFloat(m.Density)
	m.FixedResistance = copyFloat(m.FixedResistance)
	return m
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
