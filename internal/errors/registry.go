package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Element Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryArgument,
		Message:  "Invalid argument",
		Detail:   "A value passed to an element constructor or mutator cannot be used: a negative indent size, a nil child, or a child that would make the tree cyclic.",
	},
	"E002": {
		Category: CategoryKind,
		Message:  "Unknown element kind",
		Detail:   "Elements are created from symbolic kinds such as \"paragraph\" or \"hyperlink\", not from raw tag names. Run 'html5el kinds' to list them.",
	},
	"E003": {
		Category: CategoryOperation,
		Message:  "Element kind does not accept attributes",
		Detail:   "Comments and the doctype declaration have no attribute syntax in HTML5.",
	},

	// ============================================
	// Document Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryDocument,
		Message:  "Unsupported document format",
		Detail:   "Document descriptions are read from .json, .yaml, .yml or .toml files.",
	},
	"E021": {
		Category: CategoryDocument,
		Message:  "Malformed document",
		Detail:   "The document description could not be decoded. Check the syntax of the file.",
	},
	"E022": {
		Category: CategoryDocument,
		Message:  "Invalid document node",
		Detail:   "Every node needs a \"kind\". Children must be strings or nodes, attributes must be {name, value} pairs or a mapping of strings.",
	},
	"E023": {
		Category: CategoryDocument,
		Message:  "Element rejected",
		Detail:   "Building an element from the document failed.",
	},
	"E024": {
		Category: CategoryDocument,
		Message:  "Document not readable",
		Detail:   "The document file could not be opened or read.",
	},

	// ============================================
	// Config Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "html5el.json could not be read or parsed.",
	},
	"E041": {
		Category: CategoryConfig,
		Message:  "Configuration value out of range",
		Detail:   "A configuration value is outside its allowed range.",
	},

	// ============================================
	// Publish Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryPublish,
		Message:  "No bucket configured",
		Detail:   "Set publish.bucket in html5el.json or pass --bucket.",
	},
	"E061": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The object store rejected the rendered document.",
	},

	// ============================================
	// CLI Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryCLI,
		Message:  "Output file exists",
		Detail:   "Refusing to overwrite an existing file. Pass --force to replace it.",
	},
	"E081": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		Detail:   "A command line flag has a value the command cannot use.",
	},
	"E082": {
		Category: CategoryCLI,
		Message:  "Cannot write output file",
		Detail:   "The output file could not be created or written.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
