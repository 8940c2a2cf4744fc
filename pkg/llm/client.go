package llm

const summarySystemPrompt = `You are a news editor. Summarize the article text provided by the user in 130 words or less.

Rules:
1. Keep a neutral, factual tone
2. Keep key facts: names, numbers, dates, places
3. Do not add opinions or information not present in the text
4. Respond with the summary text only, no preamble`

type Summarizer interface {
	Summarize(text string) (string, error)
}
