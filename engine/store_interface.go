package engine

import (
	"github.com/lixenwraith/ant-colony/core"
)

// AnyStore provides type-erased operations so World can manage every store uniformly
// during entity destruction and reset
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

var _ AnyStore = (*Store[struct{}])(nil)
