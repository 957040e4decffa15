package theme

import "github.com/hanaburkart/portfolio/pkg/uictl"

type darkKnob struct {
	c *Controller
}

// Knob exposes the controller as an on/off control where "on" is dark.
func Knob(c *Controller) uictl.Knob {
	return darkKnob{c: c}
}

func (k darkKnob) Read() bool { return k.c.Current().Dark() }
func (k darkKnob) On()        { k.c.Set(ModeDark) }  //nolint:errcheck // ModeDark is always valid
func (k darkKnob) Off()       { k.c.Set(ModeLight) } //nolint:errcheck // ModeLight is always valid
func (k darkKnob) Toggle()    { k.c.Toggle() }
