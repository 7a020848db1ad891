package config

// OutputFormat selects the export representation of the generated settings.
type OutputFormat string

const (
	OutputFormatYAML     OutputFormat = "yaml"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatKotlin   OutputFormat = "kotlin"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatHTML     OutputFormat = "html"
)

var outputFormatNormalizer = newEnumNormalizer(map[string]OutputFormat{
	"yaml":     OutputFormatYAML,
	"yml":      OutputFormatYAML,
	"json":     OutputFormatJSON,
	"kotlin":   OutputFormatKotlin,
	"kts":      OutputFormatKotlin,
	"markdown": OutputFormatMarkdown,
	"md":       OutputFormatMarkdown,
	"html":     OutputFormatHTML,
})

// NormalizeOutputFormat returns the canonical format or "" when raw is unknown.
func NormalizeOutputFormat(raw string) OutputFormat {
	f, _ := outputFormatNormalizer.normalize(raw)
	return f
}

// ParseOutputFormat is NormalizeOutputFormat with an error listing the accepted spellings.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	f, ok := outputFormatNormalizer.normalize(raw)
	if !ok {
		return "", outputFormatNormalizer.errorFor("output format", raw)
	}
	return f, nil
}

// OutputConfig represents output configuration. An empty Path writes to stdout.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"`
	Path   string       `yaml:"path,omitempty"`
}
