// Package errors provides structured, actionable error messages for niber.
//
// Every error carries a code (e.g. "E001") that maps to a registered
// template with a short message, a longer explanation and a documentation
// URL. Call sites decorate the template with a suggestion or example.
//
// # Error Categories
//
//   - runtime: hook misuse, updates on an unmounted tree, commit failures
//   - platform: materialization problems in the host layer
//   - config: niber.json / niber.toml problems
//   - cli: tree file problems
//
// # Usage
//
//	err := errors.New("E001").
//	    WithSuggestion("Call UseState with the ctx passed to your component")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Hook called outside component render
//	//
//	//   Hooks such as UseState must be called with the context handed to a
//	//   component function, while that function is running.
//	//
//	//   Hint: Call UseState with the ctx passed to your component
//	//
//	//   Learn more: https://niber.dev/docs/errors/E001
//
// Errors compare by code with the standard library:
//
//	stderrors.Is(err, errors.New("E002"))
package errors
