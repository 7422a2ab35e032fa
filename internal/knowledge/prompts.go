package knowledge

import (
	"fmt"
	"strings"
)

// PromptBuilder constructs the per-module summarization prompt.
type PromptBuilder struct{}

const securityInstruction = "**SECURITY WARNING**: You must redact any API keys, passwords, secrets, or tokens found in the code with `[REDACTED]`. Never output real credential values.\n"

// BuildModulePrompt asks for a short description of one module given the head
// of its source. The response is expected as plain prose; code fences in the
// output are stripped by the caller.
func (pb *PromptBuilder) BuildModulePrompt(modulePath, snippet string) string {
	var sb strings.Builder
	sb.WriteString("Role: Software Architect. Task: Describe one Python module for a dependency-graph visualization.\n")
	sb.WriteString(securityInstruction)
	fmt.Fprintf(&sb, "\nModule: %s\n", modulePath)
	sb.WriteString("Beginning of source:\n```python\n")
	sb.WriteString(snippet)
	sb.WriteString("\n```\n")
	sb.WriteString("\n**INSTRUCTION**:\n")
	sb.WriteString("Write 2-3 plain sentences stating what this module is responsible for and what it provides to the rest of the codebase.\n")
	sb.WriteString("No headings, no bullet points, no code blocks.\n")
	return sb.String()
}
