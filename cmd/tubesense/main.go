package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spacesedan/tubesense/config"
	"github.com/spacesedan/tubesense/internal/analysis"
	"github.com/spacesedan/tubesense/internal/chatbot"
	"github.com/spacesedan/tubesense/internal/logging"
	"github.com/spacesedan/tubesense/internal/models"
	"github.com/spacesedan/tubesense/internal/pipeline"
)

const exampleVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	reader := bufio.NewReader(os.Stdin)

	videoURL := prompt(reader, "Enter YouTube video URL: ")
	if videoURL == "" {
		fmt.Println("No URL provided. Using example URL.")
		videoURL = exampleVideoURL
	}

	fetchAllInput := strings.ToLower(prompt(reader, "Do you want to fetch ALL comments? (y/n, default=n): "))
	fetchAll := fetchAllInput == "y" || fetchAllInput == "yes"

	maxComments := config.GetEnvInt("MAX_COMMENTS", config.DEFAULT_MAX_COMMENTS)
	if !fetchAll {
		if raw := prompt(reader, fmt.Sprintf("Enter maximum number of comments to fetch (default=%d): ", maxComments)); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				maxComments = n
			}
		}
	}

	ctx := context.Background()

	enriched, _, err := pipeline.AnalyzeVideo(ctx, videoURL, fetchAll, maxComments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	summary := analysis.BuildSummary(enriched, analysis.SummarySampleCap)
	printSummary(summary)

	if err := saveResults(enriched, "results.json"); err != nil {
		slog.Warn("Failed to save results", slog.String("error", err.Error()))
	} else {
		fmt.Println("Results saved to results.json")
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		chatLoop(ctx, reader, &summary)
	} else {
		fmt.Println("\nChatbot not available. Check your API configuration.")
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func printSummary(summary models.AnalysisSummary) {
	fmt.Println("\n--- Analysis Summary ---")
	fmt.Printf("Total Comments: %d\n", summary.TotalComments)
	fmt.Printf("Sentiment Distribution: %v\n", summary.SentimentDistribution)
	fmt.Printf("Language Distribution: %v\n", summary.LanguageDistribution)
	fmt.Printf("Toxic Comments: %d\n", summary.ToxicCommentsCount)
}

func saveResults(enriched []models.EnrichedComment, filename string) error {
	data, err := json.MarshalIndent(enriched, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func chatLoop(ctx context.Context, reader *bufio.Reader, summary *models.AnalysisSummary) {
	fmt.Println("\n--- Chatbot Session ---")
	fmt.Println("Ask questions about the analysis or type 'exit' to quit.")

	for {
		question := prompt(reader, "\nYou: ")
		if question == "" {
			continue
		}
		if lower := strings.ToLower(question); lower == "exit" || lower == "quit" {
			return
		}

		fmt.Printf("\nBot: %s\n", chatbot.AskQuestion(ctx, question, summary))
	}
}
