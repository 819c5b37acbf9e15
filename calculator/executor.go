package calculator

import (
	"sync"
	"time"

	"uvalue/model"
)

// 基于构造的任务分配，每个任务独立计算一个构造，互不共享累计值
type executor struct {
	workers      int
	dispatchChan chan task
	doneChan     chan done
}

type task struct {
	index    int
	assembly model.Assembly
}

type done struct {
	index  int
	result *model.AssemblyResult
	err    error
}

func newExecutor(workers, tasks int) *executor {
	if workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return &executor{
		workers:      workers,
		dispatchChan: make(chan task, tasks),
		doneChan:     make(chan done, tasks),
	}
}

// dispatchTask 分发全部任务并等待完成，结果按输入顺序返回
func (e *executor) dispatchTask(c *Calculator, assemblies []model.Assembly) ([]done, time.Duration) {
	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range e.dispatchChan {
				res, err := c.Compute(t.assembly.Layers)
				e.doneChan <- done{index: t.index, result: res, err: err}
			}
		}()
	}

	for i, asm := range assemblies {
		e.dispatchChan <- task{index: i, assembly: asm}
	}
	close(e.dispatchChan)
	wg.Wait()
	close(e.doneChan)

	results := make([]done, len(assemblies))
	for d := range e.doneChan {
		results[d.index] = d
	}
	return results, time.Since(start)
}
