package iterator

import (
	"fmt"
	"regexp"
	"strings"
)

// BuildExtensionRegex compiles a case-insensitive regex matching any
// path ending in one of extensions (given with or without a leading
// dot). This backs the directory-walk selector's file-extension
// filtering.
func BuildExtensionRegex(extensions []string) (*regexp.Regexp, error) {
	if len(extensions) == 0 {
		extensions = []string{".md", ".markdown"}
	}
	parts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		parts = append(parts, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	return regexp.Compile(fmt.Sprintf(`(?i)\.(%s)$`, strings.Join(parts, "|")))
}
