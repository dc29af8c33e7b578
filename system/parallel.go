package system

import (
	"sync"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
)

// forEachAgent runs fn for every entity, fanning out across NavWorkers goroutines once
// the population reaches NavParallelThreshold
// fn must only mutate state owned by its own entity
func forEachAgent(entities []core.Entity, fn func(core.Entity)) {
	n := len(entities)
	if n < parameter.NavParallelThreshold || parameter.NavWorkers < 2 {
		for _, e := range entities {
			fn(e)
		}
		return
	}

	chunk := (n + parameter.NavWorkers - 1) / parameter.NavWorkers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		part := entities[start:min(start+chunk, n)]
		wg.Add(1)
		core.Go(func() {
			defer wg.Done()
			for _, e := range part {
				fn(e)
			}
		})
	}
	wg.Wait()
}
