package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"uvalue/model"
)

// Compare 对比多个构造。每个构造单独计算，与单独调用 Compute 的结果一致；
// 任一构造出错则整体失败。
func (c *Calculator) Compare(assemblies []model.Assembly) ([]model.Comparison, error) {
	if len(assemblies) == 0 {
		return nil, model.ErrNoAssemblies
	}
	if len(assemblies) > c.cfg.MaxCompare {
		return nil, fmt.Errorf("%d selected, at most %d: %w", len(assemblies), c.cfg.MaxCompare, model.ErrTooManyAssemblies)
	}

	e := newExecutor(c.cfg.Workers, len(assemblies))
	results, elapsed := e.dispatchTask(c, assemblies)

	comparisons := make([]model.Comparison, 0, len(assemblies))
	for i, d := range results {
		if d.err != nil {
			return nil, fmt.Errorf("assembly %q: %w", assemblies[i].Label, d.err)
		}
		comparisons = append(comparisons, model.Comparison{
			Label:  assemblies[i].Label,
			Result: d.result,
		})
	}

	log.WithFields(log.Fields{
		"assemblies": len(assemblies),
		"workers":    e.workers,
		"elapsed":    elapsed,
	}).Debug("assemblies compared")
	return comparisons, nil
}
