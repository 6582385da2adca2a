package niber

import (
	"reflect"
	"sort"

	"github.com/vango-dev/niber/pkg/vdom"
)

// InstanceSnapshot is a serializable view of an instance subtree.
type InstanceSnapshot struct {
	ID        string             `json:"id"`
	Tag       string             `json:"tag"`
	Element   string             `json:"element,omitempty"`
	Component string             `json:"component,omitempty"`
	Key       *string            `json:"key,omitempty"`
	Props     map[string]any     `json:"props,omitempty"`
	Events    []string           `json:"events,omitempty"`
	State     []any              `json:"state,omitempty"`
	Children  []InstanceSnapshot `json:"children,omitempty"`
}

// Dump returns a snapshot of the subtree rooted at inst. Function-valued
// props are reported by name under Events; nested descriptions passed to
// components are omitted.
func (inst *Instance) Dump() InstanceSnapshot {
	snap := InstanceSnapshot{
		ID:    inst.ID,
		Tag:   TagOf(inst).String(),
		State: inst.State(),
	}
	if inst.IsComponent() {
		snap.Component = inst.Comp.Name()
	} else {
		snap.Element = inst.Tag
	}
	if inst.HasKey {
		key := inst.Key
		snap.Key = &key
	}

	for name, value := range inst.Props {
		if name == vdom.ChildrenProp {
			continue
		}
		if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
			snap.Events = append(snap.Events, name)
			continue
		}
		if snap.Props == nil {
			snap.Props = make(map[string]any)
		}
		snap.Props[name] = value
	}
	sort.Strings(snap.Events)

	for _, child := range inst.Children {
		snap.Children = append(snap.Children, child.Dump())
	}
	return snap
}

// Snapshot returns a snapshot of the whole tree, or nil when nothing is
// mounted.
func (rt *Runtime) Snapshot() *InstanceSnapshot {
	if rt.root == nil {
		return nil
	}
	snap := rt.root.Dump()
	return &snap
}
