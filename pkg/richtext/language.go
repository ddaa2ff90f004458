package richtext

import "strings"

// languageAliases maps editor shorthands to canonical highlighter
// language names.
var languageAliases = map[string]string{
	"js":     "javascript",
	"ts":     "typescript",
	"py":     "python",
	"rb":     "ruby",
	"sh":     "bash",
	"zsh":    "bash",
	"shell":  "bash",
	"yml":    "yaml",
	"md":     "markdown",
	"gql":    "graphql",
	"golang": "go",
}

// fallbackLanguage is used when the editor gave no usable language.
const fallbackLanguage = "plaintext"

// NormalizeLanguage resolves the code block's language identifier
// case-insensitively through the alias table, falling back to plain
// text when nothing was set.
func NormalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return fallbackLanguage
	}
	if canonical, ok := languageAliases[lang]; ok {
		return canonical
	}
	return lang
}
