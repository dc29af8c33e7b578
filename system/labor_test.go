package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/event"
)

func laborFor(req [behavior.RoleCount]int, ants []laborView) *[behavior.RoleCount]component.LaborData {
	l := &[behavior.RoleCount]component.LaborData{}
	for r := range l {
		l[r].Requested = req[r]
	}
	for _, a := range ants {
		l[a.Role].Active++
	}
	return l
}

func TestPlanLabor(t *testing.T) {
	const colony core.Entity = 100
	var req [behavior.RoleCount]int

	tests := []struct {
		name      string
		forager   int
		nursemaid int
		ants      []laborView
		want      []event.RoleChangePayload
	}{
		{
			name:      "idle fill nursemaids first",
			forager:   1,
			nursemaid: 1,
			ants: []laborView{
				{Entity: 1, Colony: colony, Role: behavior.RoleIdle},
				{Entity: 2, Colony: colony, Role: behavior.RoleIdle},
				{Entity: 3, Colony: colony, Role: behavior.RoleIdle},
			},
			want: []event.RoleChangePayload{
				{Entity: 1, Role: behavior.RoleNursemaid},
				{Entity: 2, Role: behavior.RoleForager},
			},
		},
		{
			name:      "surplus forager carrying food stays",
			forager:   0,
			nursemaid: 1,
			ants: []laborView{
				{Entity: 1, Colony: colony, Role: behavior.RoleForager, State: behavior.BringingHomeFood},
				{Entity: 2, Colony: colony, Role: behavior.RoleForager, State: behavior.Seeking},
			},
			want: []event.RoleChangePayload{
				{Entity: 2, Role: behavior.RoleNursemaid},
			},
		},
		{
			name:      "surplus nursemaid goes idle",
			forager:   0,
			nursemaid: 0,
			ants: []laborView{
				{Entity: 1, Colony: colony, Role: behavior.RoleNursemaid},
				{Entity: 2, Colony: colony, Role: behavior.RoleForager, State: behavior.GoingHomeEmpty},
			},
			want: []event.RoleChangePayload{
				{Entity: 1, Role: behavior.RoleIdle},
				{Entity: 2, Role: behavior.RoleIdle},
			},
		},
		{
			name:      "unknown colony ignored",
			forager:   5,
			nursemaid: 5,
			ants: []laborView{
				{Entity: 1, Colony: 7, Role: behavior.RoleIdle},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req[behavior.RoleForager] = tt.forager
			req[behavior.RoleNursemaid] = tt.nursemaid
			var own []laborView
			for _, a := range tt.ants {
				if a.Colony == colony {
					own = append(own, a)
				}
			}
			labor := map[core.Entity]*[behavior.RoleCount]component.LaborData{
				colony: laborFor(req, own),
			}
			assert.Equal(t, tt.want, planLabor(tt.ants, labor))
		})
	}
}

func TestRequestedLabor(t *testing.T) {
	req := requestedLabor(20, 0.6, 0.3)
	assert.Equal(t, 12, req[behavior.RoleForager])
	assert.Equal(t, 6, req[behavior.RoleNursemaid])
	assert.Equal(t, 2, req[behavior.RoleIdle])

	req = requestedLabor(3, 1, 1)
	assert.Equal(t, 0, req[behavior.RoleIdle])
}
