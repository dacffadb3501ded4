package rag

import "fmt"

// systemInstructions keep the model grounded in the retrieved context.
const systemInstructions = `You are a helpful AI assistant. Your knowledge is limited to ONLY the context provided below from a recent web search.
Instructions:
1. Answer the user's question based STRICTLY on the provided context.
2. If the context does not contain the answer, you must clearly state "I cannot find a definitive answer based on the recent search results."
3. Be concise, informative, and factual.
4. Cite your sources by referring to the source numbers in brackets (e.g., [Source 1]) throughout your answer.`

// BuildPrompt combines the system instructions, retrieved context and user
// question into the single prompt sent to the model.
func BuildPrompt(query, searchContext string) string {
	return fmt.Sprintf(`%s

%s

User Question: %s

Now, provide your answer based on the context above:`, systemInstructions, searchContext, query)
}
