// ABOUTME: Context assembly from retrieved chunks
// ABOUTME: Newline-joined in relevance order with a fixed audit preview
package retriever

import "strings"

// PreviewLength is how many characters of assembled context are exposed
// for display and audit, independent of the full context sent to the LLM.
const PreviewLength = 300

// Assemble joins retrieved chunk texts with newlines, preserving the
// relevance order from the retriever. No re-ranking, no deduplication.
// For the lexical path the single window string passes through unchanged.
func Assemble(texts []string) string {
	return strings.Join(texts, "\n")
}

// Preview truncates assembled context to the fixed preview length
func Preview(contextText string) string {
	runes := []rune(contextText)
	if len(runes) <= PreviewLength {
		return contextText
	}
	return string(runes[:PreviewLength])
}
