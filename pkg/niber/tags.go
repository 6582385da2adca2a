package niber

import "github.com/vango-dev/niber/pkg/vdom"

// WorkTag classifies an instance for the platform layer.
type WorkTag uint8

const (
	FunctionComponent WorkTag = iota
	HostComponent
	Fragment
	Text
	Unknown
)

// String returns the string representation of the WorkTag.
func (t WorkTag) String() string {
	switch t {
	case FunctionComponent:
		return "FunctionComponent"
	case HostComponent:
		return "HostComponent"
	case Fragment:
		return "Fragment"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// TagOf classifies inst.
func TagOf(inst *Instance) WorkTag {
	if inst == nil {
		return Unknown
	}
	switch inst.Kind {
	case vdom.KindComponent:
		return FunctionComponent
	case vdom.KindElement:
		if inst.Tag == "" {
			return Unknown
		}
		return HostComponent
	case vdom.KindFragment:
		return Fragment
	case vdom.KindText:
		return Text
	default:
		return Unknown
	}
}
