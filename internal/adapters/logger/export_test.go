// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	FormatErrorEntries = formatErrorEntries
)

// CollectErrorMessages returns the messages collected from the error chain.
func CollectErrorMessages(err error) []string {
	return collectErrorEntries(err).messages
}

// CollectErrorMetadata returns the metadata collected from the error chain.
func CollectErrorMetadata(err error) map[string]any {
	return collectErrorEntries(err).metadata
}
