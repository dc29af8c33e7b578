package engine

import (
	"github.com/lixenwraith/ant-colony/component"
)

// ComponentStore holds every typed component store of the world
type ComponentStore struct {
	Ant     *Store[component.AntComponent]
	Forager *Store[component.ForagerComponent]
	Nav     *Store[component.NavigationComponent]
	Drift   *Store[component.DriftComponent]

	Food    *Store[component.FoodComponent]
	Colony  *Store[component.ColonyComponent]
	Spawner *Store[component.SpawnerComponent]
	Larva   *Store[component.LarvaComponent]

	Debug *Store[component.VisualDebugComponent]
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Ant:     NewStore[component.AntComponent](),
		Forager: NewStore[component.ForagerComponent](),
		Nav:     NewStore[component.NavigationComponent](),
		Drift:   NewStore[component.DriftComponent](),
		Food:    NewStore[component.FoodComponent](),
		Colony:  NewStore[component.ColonyComponent](),
		Spawner: NewStore[component.SpawnerComponent](),
		Larva:   NewStore[component.LarvaComponent](),
		Debug:   NewStore[component.VisualDebugComponent](),
	}

	c := &w.Components
	w.allStores = []AnyStore{
		c.Ant, c.Forager, c.Nav, c.Drift,
		c.Food, c.Colony, c.Spawner, c.Larva,
		c.Debug,
	}
}
