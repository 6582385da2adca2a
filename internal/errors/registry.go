package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://niber.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E039)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Hook called outside component render",
		Detail:   "Hooks such as UseState must be called with the context handed to a component function, while that function is running.",
		DocURL:   docBase + "E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "State update before mount",
		Detail:   "A state setter ran but the runtime has no root instance. The tree was never mounted or has been unmounted; the update was abandoned.",
		DocURL:   docBase + "E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Hook order changed",
		Detail:   "A hook cell holds a value of a different type than the hook reading it. Hooks must be called in the same order on every render.",
		DocURL:   docBase + "E003",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Invalid state action",
		Detail:   "A setter was dispatched a value that is neither the state type nor an updater function of that type.",
		DocURL:   docBase + "E004",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Commit failed",
		Detail:   "The container returned an error while materializing the instance tree.",
		DocURL:   docBase + "E005",
	},

	// ============================================
	// Platform Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryPlatform,
		Message:  "Unrecognized node kind",
		Detail:   "The instance has a kind the platform layer cannot materialize. The node and its subtree were skipped.",
		DocURL:   docBase + "E040",
	},
	"E041": {
		Category: CategoryPlatform,
		Message:  "Node not found",
		Detail:   "No platform node exists at the requested path.",
		DocURL:   docBase + "E041",
	},
	"E042": {
		Category: CategoryPlatform,
		Message:  "Invalid dispatch request",
		Detail:   "The dispatch request body could not be decoded. Expected {\"path\": [0, 1], \"event\": \"click\"}.",
		DocURL:   docBase + "E042",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or not recognized.",
		DocURL:   docBase + "E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No niber.json or niber.toml was found.",
		DocURL:   docBase + "E141",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Invalid tree file",
		Detail:   "The tree file could not be decoded into a description tree.",
		DocURL:   docBase + "E160",
	},
	"E161": {
		Category: CategoryCLI,
		Message:  "Unknown component",
		Detail:   "The tree file references a component that is not registered.",
		DocURL:   docBase + "E161",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a custom error code to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
