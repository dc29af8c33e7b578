package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
)

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleSpawner = styleBase.Foreground(tcell.ColorSaddleBrown).Bold(true)
	styleFood    = styleBase.Foreground(tcell.ColorGreen)
	styleFoodBig = styleBase.Foreground(tcell.ColorLime).Bold(true)
)

// Scent shading from weakest to strongest
var scentRamp = []rune{'.', ':', '░', '▒'}

var debugColors = [...]tcell.Color{
	component.ColorWhite:  tcell.ColorWhite,
	component.ColorPink:   tcell.ColorHotPink,
	component.ColorOrange: tcell.ColorOrange,
	component.ColorGreen:  tcell.ColorGreen,
	component.ColorYellow: tcell.ColorYellow,
	component.ColorRed:    tcell.ColorRed,
	component.ColorBlue:   tcell.ColorDodgerBlue,
	component.ColorPurple: tcell.ColorPurple,
	component.ColorGray:   tcell.ColorGray,
}

func debugStyle(c component.DebugColor) tcell.Style {
	if int(c) >= len(debugColors) {
		return styleBase
	}
	return styleBase.Foreground(debugColors[c])
}

// antGlyph picks rune and style from role and forager state
func antGlyph(role behavior.Role, state behavior.ForagerState, hasForager bool, carrying int) (rune, tcell.Style) {
	switch role {
	case behavior.RoleNursemaid:
		return 'n', styleBase.Foreground(tcell.ColorHotPink)
	case behavior.RoleForager:
		if carrying > 0 {
			return 'o', styleBase.Foreground(tcell.ColorYellow).Bold(true)
		}
		if !hasForager {
			return 'f', styleBase.Foreground(tcell.ColorOrange)
		}
		switch state {
		case behavior.FollowingTrail:
			return 'f', styleBase.Foreground(tcell.ColorGreen)
		case behavior.GoingHomeEmpty:
			return 'f', styleBase.Foreground(tcell.ColorRed)
		default:
			return 'f', styleBase.Foreground(tcell.ColorOrange)
		}
	default:
		return 'a', styleBase.Foreground(tcell.ColorSilver)
	}
}
