package llm

import (
	"context"
	"fmt"
)

// Provider turns a Summary Document and an optional user question into an
// analysis. The summary is produced and bounded before any provider is
// called - a provider failure can never corrupt it.
type Provider interface {
	Generate(ctx context.Context, summary string, question string) (string, error)
}

const defaultQuestion = "Please provide a comprehensive analysis of this spreadsheet data, " +
	"including key insights, patterns, and recommendations."

// BuildAnalysisPrompt wraps the bounded summary and the user question into
// the data-analyst prompt shared by every provider.
func BuildAnalysisPrompt(summary string, question string) string {
	if question == "" {
		question = defaultQuestion
	}
	return fmt.Sprintf(`I have processed multiple spreadsheet files and need your analysis.

SPREADSHEET DATA SUMMARY:
%s

USER QUERY: %s

Please provide:
1. Key insights from the data
2. Data quality observations
3. Patterns or trends you notice
4. Recommendations for further analysis
5. Any potential issues or anomalies

Be specific and actionable in your response.`, summary, question)
}
