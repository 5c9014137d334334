package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/openai/openai-go"

	"github.com/spacesedan/tubesense/internal/clients"
	"github.com/spacesedan/tubesense/internal/models"
)

const systemPrompt = `You are an AI assistant analyzing YouTube comment sentiment data.
Based on the analysis data provided, answer the question at the end.
Provide a concise and helpful response based on the data when relevant.
When discussing what people are talking about, reference the sample comments
to provide specific insights about the topics and themes in the comments.
Keep your response under 200 words.`

const apologyResponse = "Sorry, I encountered an error while processing your question. Please try again."

// BuildContext renders an analysis summary into the textual context block
// the assistant receives alongside the question.
func BuildContext(summary *models.AnalysisSummary) string {
	var sb strings.Builder

	sb.WriteString("=== ANALYSIS DATA ===\n")
	fmt.Fprintf(&sb, "Total Comments Analyzed: %d\n\n", summary.TotalComments)

	sb.WriteString("Sentiment Distribution:\n")
	writeDistribution(&sb, summary.SentimentDistribution)

	sb.WriteString("\nLanguage Distribution:\n")
	writeDistribution(&sb, summary.LanguageDistribution)

	fmt.Fprintf(&sb, "\nToxic Comments: %d\n", summary.ToxicCommentsCount)

	sb.WriteString("\nSample Comments by Sentiment:\n")
	for _, label := range []string{"positive", "negative", "neutral"} {
		comments := summary.SampleComments[label]
		if len(comments) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s Comments:\n", capitalize(label))
		for i, comment := range comments {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, comment)
		}
	}

	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeDistribution(sb *strings.Builder, distribution map[string]int) {
	keys := make([]string, 0, len(distribution))
	for k := range distribution {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "  %s: %d\n", k, distribution[k])
	}
}

// AskQuestion sends the question, with the summary as context when present,
// to the assistant. Failures never propagate past this boundary: the caller
// always gets displayable text.
func AskQuestion(ctx context.Context, question string, summary *models.AnalysisSummary) string {
	ai, err := clients.GetAIClient()
	if err != nil {
		slog.Warn("[Chatbot] Assistant unavailable", slog.String("error", err.Error()))
		return "Chatbot is not available. Please check your API configuration."
	}

	userMessage := question
	if summary != nil {
		userMessage = fmt.Sprintf("%s\n=== QUESTION ===\n%s", BuildContext(summary), question)
	}

	chatCompletion, err := ai.Client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userMessage),
			}),
			Model:       openai.F(openai.ChatModelGPT4oMini),
			Temperature: openai.Float(0.4),
		})
	if err != nil {
		slog.Error("[Chatbot] OpenAI API call failed", slog.String("error", err.Error()))
		return apologyResponse
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		slog.Warn("[Chatbot] OpenAI returned empty response")
		return apologyResponse
	}

	return strings.TrimSpace(chatCompletion.Choices[0].Message.Content)
}
