// Package uictl defines small control interfaces shared between UI hosts
// and the components they drive.
package uictl

// Knob is a simple on/off toggle control.
type Knob interface {
	Read() bool
	On()
	Off()
	Toggle()
}

