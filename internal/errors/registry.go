package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

var registry = map[string]ErrorTemplate{
	// Configuration (E100-E199)
	"E100": {
		Category:   CategoryConfig,
		Message:    "Cannot read configuration file",
		Suggestion: "Check the path passed to --config",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Suggestion: "Check that the file is valid JSON",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid environment override",
		Suggestion: "Check the SITE_* variables in the environment and .env",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Configuration value out of range",
	},

	// Assets (E200-E299)
	"E200": {
		Category:   CategoryAsset,
		Message:    "Banner asset not found",
		Suggestion: "Add the image under the static directory or fix banner.source",
	},
	"E201": {
		Category:   CategoryAsset,
		Message:    "Cannot load asset manifest",
		Suggestion: "Run 'site build' to regenerate manifest.json",
	},
	"E202": {
		Category:   CategoryAsset,
		Message:    "Cannot load style table",
		Suggestion: "Check styles.map; it must be a JSON object of name to class",
	},

	// Rendering (E300-E399)
	"E300": {
		Category: CategoryRender,
		Message:  "Rendering failed",
	},
	"E301": {
		Category: CategoryRender,
		Message:  "Cannot write build output",
	},

	// Server (E400-E499)
	"E400": {
		Category:   CategoryServer,
		Message:    "Server failed to start",
		Suggestion: "Check that the port is free",
	},

	// Publishing (E500-E599)
	"E500": {
		Category:   CategoryPublish,
		Message:    "No bucket configured",
		Suggestion: "Set publish.bucket in site.json or SITE_PUBLISH_BUCKET",
	},
	"E501": {
		Category:   CategoryPublish,
		Message:    "Upload failed",
		Suggestion: "Check AWS credentials and bucket permissions",
	},
	"E502": {
		Category: CategoryPublish,
		Message:  "Cannot load AWS configuration",
	},
}

// GetAllCodes returns every registered code, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template registered for code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
