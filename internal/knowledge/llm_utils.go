package knowledge

import "strings"

// cleanMarkdownOutput strips the code fences models like to wrap short
// answers in, leaving the plain description text.
func cleanMarkdownOutput(text string) string {
	text = strings.TrimSpace(text)
	for _, fence := range []string{"```markdown", "```text", "```"} {
		if strings.HasPrefix(text, fence) {
			text = strings.TrimPrefix(text, fence)
			text = strings.TrimSuffix(text, "```")
			break
		}
	}
	return strings.TrimSpace(text)
}
