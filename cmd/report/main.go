package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/logging"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/pipeline"
	"github.com/spacesedan/reviewpulse/internal/topics"
)

func main() {
	input := flag.String("input", "", "path to a JSON file holding an array of reviews")
	industry := flag.String("industry", "general", "aspect configuration: general, fashion, beauty, electronics, food")
	nTopics := flag.Int("topics", topics.DefaultTopicCount, "number of topics to extract")
	method := flag.String("method", string(topics.MethodNMF), "topic modeling method: nmf or lda")
	freq := flag.String("freq", "week", "trend bucket width: day, week, month")
	flag.Parse()

	logging.InitLogger()

	if *input == "" {
		slog.Error("[Report] Missing required -input flag")
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		slog.Error("[Report] Failed to read input file",
			slog.String("path", *input),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var reviews []models.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		slog.Error("[Report] Failed to parse reviews",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := pipeline.DefaultOptions()
	opts.Industry = aspects.ParseIndustry(*industry)
	opts.TopicCount = *nTopics
	opts.TopicMethod = topics.Method(*method)
	opts.Frequency = models.ParseFrequency(*freq)

	report, err := pipeline.Run(reviews, opts)
	if err != nil {
		slog.Error("[Report] Pipeline run failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("[Report] Failed to serialize report",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))

	slog.Info("[Report] Analysis complete",
		slog.Int("reviews", len(reviews)),
		slog.Int("alerts", len(report.Alerts)))
}
