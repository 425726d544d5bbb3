package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Codes returns every registered code.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config (C100-C199)
	"C100": {
		Category: CategoryConfig,
		Message:  "Could not read config file",
		Detail:   "The config file exists but could not be read or parsed as YAML.",
	},
	"C101": {
		Category:   CategoryConfig,
		Message:    "Invalid listen address",
		Detail:     "server.addr must be a host:port pair.",
		Suggestion: "Use host:port, for example :8080",
	},
	"C102": {
		Category:   CategoryConfig,
		Message:    "Missing session secret",
		Detail:     "admin sessions are signed with server.secret; it must be at least 16 bytes.",
		Suggestion: "Set CAFE_SECRET or server.secret in cafe.yaml",
	},
	"C103": {
		Category:   CategoryConfig,
		Message:    "Incomplete S3 configuration",
		Detail:     "uploads.backend is s3 but bucket or region is missing.",
		Suggestion: "Set uploads.s3.bucket and uploads.s3.region, or use the disk backend",
	},
	"C104": {
		Category: CategoryConfig,
		Message:  "Unknown upload backend",
		Detail:   "uploads.backend must be disk or s3.",
	},
	"C105": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "log.level must be one of debug, info, warn, error.",
	},
	"C106": {
		Category:   CategoryConfig,
		Message:    "Invalid session TTL",
		Detail:     "server.session_ttl must be a positive Go duration.",
		Suggestion: "Use a value such as 30m or 12h",
	},
	"C107": {
		Category: CategoryConfig,
		Message:  "Unknown session store",
		Detail:   "server.sessions must be memory or bolt.",
	},

	// Store (C200-C299)
	"C200": {
		Category:   CategoryStore,
		Message:    "Could not open content store",
		Detail:     "The bbolt database could not be opened. Another process may hold its lock.",
		Suggestion: "Stop other cafe processes or point data.path elsewhere",
	},
	"C201": {
		Category: CategoryStore,
		Message:  "Content store write failed",
	},
	"C202": {
		Category: CategoryStore,
		Message:  "Content not found",
	},

	// Uploads (C300-C399)
	"C300": {
		Category: CategoryUpload,
		Message:  "File type not allowed",
		Detail:   "Gallery images must be png, jpg, jpeg, gif or webp.",
	},
	"C301": {
		Category: CategoryUpload,
		Message:  "File too large",
		Detail:   "Uploads are limited to 16 MiB.",
	},
	"C302": {
		Category: CategoryUpload,
		Message:  "Could not store upload",
	},

	// Auth (C400-C499)
	"C400": {
		Category: CategoryAuth,
		Message:  "Invalid credentials",
	},
	"C401": {
		Category: CategoryAuth,
		Message:  "Password too short",
		Detail:   "Admin passwords must be at least 8 characters.",
	},

	// Render (C500-C599)
	"C500": {
		Category: CategoryRender,
		Message:  "Page render failed",
	},
	"C501": {
		Category: CategoryRender,
		Message:  "Unknown page",
		Detail:   "No route matches the requested path.",
	},

	// Validation (C600-C699)
	"C600": {
		Category: CategoryValidation,
		Message:  "Required field missing",
	},
}
