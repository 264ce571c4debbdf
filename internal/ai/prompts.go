package ai

import "fmt"

const systemPrompt = "You are a helpful language learning assistant. Keep responses concise."

func baseFormPrompt(word, snippet string) string {
	return fmt.Sprintf(`What is the dictionary (base) form of the word "%s" as used in: "%s"?
Reply with the base form only, in lower case, without punctuation or explanation.`, word, snippet)
}

func examplePrompt(word string) string {
	return fmt.Sprintf(`Generate one natural example sentence using the word "%s" that helps a language learner understand its meaning. Under 20 words. Output only the sentence.`, word)
}

func evaluationPrompt(sentence, word string) string {
	return fmt.Sprintf(`Evaluate this sentence by a language learner:
"%s"
Target word: "%s"

Reply in JSON only:
{"isCorrect":true/false,"rating":"excellent"/"good"/"needs_improvement","feedback":"brief feedback","suggestion":"improved version or null"}`, sentence, word)
}
