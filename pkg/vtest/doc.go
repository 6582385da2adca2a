// Package vtest provides testing helpers for niber components.
//
// Mount renders a description into a fresh runtime backed by an in-memory
// host container, then lets tests drive events and assert on the committed
// output.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, vdom.C(Counter))
//	    h.ExpectText("0+")
//	    h.Click(host.ByTag("button"))
//	    h.ExpectText("1+")
//	}
//
// # One-Shot Assertions
//
// For components without interaction, render once and assert on HTML:
//
//	vtest.ExpectContains(t, vdom.C(Greeting, vdom.Prop("name", "Ada")), "Hello, Ada")
//	vtest.ExpectNotContains(t, vdom.C(Greeting), "Error")
//
// Each harness records metrics into its own Prometheus registry, exposed as
// Harness.Registry for use with prometheus/testutil.
package vtest
