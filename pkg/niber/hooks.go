package niber

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/vdom"
)

// UseState returns the state stored in the current hook cell together with a
// setter for it. On the first render of an occurrence the cell is
// initialized with initial; later renders return the stored value.
//
// UseState must be called with the ctx handed to the running component
// function, and the sequence of hook calls must be the same on every render.
// Violations panic with a coded error (see IsConfigurationError).
//
//	var Counter = vdom.Define("Counter", func(ctx vdom.Context, _ vdom.Props) *vdom.VNode {
//	    count, set := niber.UseState(ctx, 0)
//	    return vdom.Button(
//	        vdom.OnClick(func() { set.Update(func(n int) int { return n + 1 }) }),
//	        vdom.Textf("%d", count),
//	    )
//	})
func UseState[T any](c vdom.Context, initial T) (T, *Setter[T]) {
	ctx := mustRender(c, "UseState")
	inst := ctx.inst
	store := inst.hooks

	index := inst.hookIndex
	inst.hookIndex++

	if index >= len(store.cells) {
		store.cells = append(store.cells, initial)
	}

	value := cellValue[T](store.cells[index], index)
	return value, &Setter[T]{rt: ctx.rt, store: store, index: index}
}

// mustRender validates the render context handed to a hook.
func mustRender(c vdom.Context, hook string) *Ctx {
	ctx, ok := c.(*Ctx)
	if !ok || !ctx.Rendering() {
		panic(errors.New("E001").
			WithSuggestion(fmt.Sprintf("Call %s with the ctx passed to your component function, before it returns", hook)).
			WithExample("func(ctx vdom.Context, p vdom.Props) *vdom.VNode {\n    count, set := niber.UseState(ctx, 0)\n    ...\n}"))
	}
	if ctx.inst.hooks == nil {
		panic(errors.New("E001").WithDetail("Hooks can only be used by component instances."))
	}
	return ctx
}

// cellValue converts a stored cell to T. A cell holding nil yields the zero
// value; a cell of another type means the hook order changed.
func cellValue[T any](cell any, index int) T {
	if cell == nil {
		var zero T
		return zero
	}
	v, ok := cell.(T)
	if !ok {
		panic(errors.New("E003").WithDetail(fmt.Sprintf(
			"Hook %d holds a %T but was read as %s. Hooks must be called in the same order on every render.",
			index, cell, reflect.TypeFor[T]())))
	}
	return v
}

// Setter writes one hook cell and re-renders the owning component.
//
// A Setter remains valid after the render that created it has finished; it
// is normally called from event handlers.
type Setter[T any] struct {
	rt    *Runtime
	store *hookStore
	index int
}

// Value returns the value currently stored in the cell.
func (s *Setter[T]) Value() T {
	return cellValue[T](s.store.cells[s.index], s.index)
}

// Set stores v and re-renders the owning component.
func (s *Setter[T]) Set(v T) {
	s.store.cells[s.index] = v
	s.rt.trigger(s.store.owner)
}

// Update stores fn applied to the current value and re-renders the owning
// component.
func (s *Setter[T]) Update(fn func(T) T) {
	s.Set(fn(s.Value()))
}

// Dispatch accepts either a value of type T or an updater func(T) T. It is
// meant for callers holding an untyped action, such as event bridges; typed
// code should use Set or Update.
func (s *Setter[T]) Dispatch(action any) {
	switch a := action.(type) {
	case func(T) T:
		s.Update(a)
	case T:
		s.Set(a)
	default:
		if action == nil {
			var zero T
			s.Set(zero)
			return
		}
		panic(errors.New("E004").WithDetail(fmt.Sprintf(
			"Dispatch received %T; expected %s or func(%[2]s) %[2]s.", action, reflect.TypeFor[T]())))
	}
}
