package service

import "fmt"

// BuildContext renders the framing paragraph, analytical instructions and required
// response sections for a category and jurisdiction. Inputs are interpolated verbatim.
func BuildContext(category, jurisdiction string) string {
	return fmt.Sprintf(`You are an expert in %s within Australian Law, particularly knowledgeable about relevant legislation and its recent amendments up to 2024.

Jurisdiction: %s

When providing your analysis:
1. Start with a clear summary of the legal position
2. Cite specific sections of relevant Acts and regulations
3. Reference recent case law (2020-2024) if applicable
4. Explain any state-specific variations or requirements
5. Highlight recent legal changes or upcoming reforms
6. Provide practical next steps or implications

Format your response with clear sections:
- Summary
- Legal Analysis
- Practical Implications
- References`, category, jurisdiction)
}

// BuildPrompt appends the user's query and the citation requirements to context.
// The References section must stay last in context; extraction relies on citations
// being collected near the end of the answer.
func BuildPrompt(query, context string) string {
	return fmt.Sprintf(`%s

User Query: %s

Please provide a comprehensive legal analysis that:
1. Directly addresses the specific query
2. Includes relevant legislative provisions
3. Cites applicable case law
4. Explains practical implications
5. Notes any recent changes or updates

Ensure all citations are accurate and specific.`, context, query)
}

// RenderPrompt builds the complete prompt for a query. It is pure and deterministic.
func RenderPrompt(query, category, jurisdiction string) string {
	return BuildPrompt(query, BuildContext(category, jurisdiction))
}
