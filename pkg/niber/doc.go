// Package niber is a small UI runtime built around reconciliation and
// hook-based component state.
//
// Component functions (see vdom.Define) describe UI as vdom.VNode trees. A
// Runtime turns the description into a persistent tree of Instances, commits
// it to a Container, and keeps the tree in sync when state changes:
//
//	rt := niber.New()
//	if err := rt.Render(vdom.C(Counter), host.NewContainer()); err != nil {
//	    return err
//	}
//
// # State
//
// UseState stores one value per call site in the instance being rendered.
// Calls are matched by order, so a component must make the same hook calls on
// every render. The returned Setter re-renders the component synchronously and
// commits the whole tree; there is no batching.
//
// # Reconciliation
//
// On re-render, each child description is paired with a previous instance:
// the one with the same key if there is one, otherwise the one at the same
// position among the non-empty siblings. Same component type keeps its state;
// same element tag keeps its subtree; anything else is mounted fresh.
//
// Unkeyed siblings match by position, so inserting an element at the front of
// an unkeyed list shifts state onto different items. Key dynamic lists.
package niber
