package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/analysis"
	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/model"
)

const analyzeSystemPrompt = `You are a football (soccer) analyst. You are given structured data from a
match-outcome analysis tool and a question from the user.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise. Prefer concrete match facts over generic football commentary.

Data glossary:
- result: how the match was decided (full time, extra time, penalty shootout).
- score: the stored score including extra time; shootout kicks are separate.
- penalties: successful shootout kicks per side, only meaningful after a shootout.
- participation: (team, match) appearances per country, both finalists counted.
- wins: resolved winners tallied per country and team.
- top_scorers: goals per scorer display name across all listed matches.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <competition> <question>",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	competition, question := args[0], args[1]

	store := loader.NewStore(dataDir)
	resolved, err := buildStudy(store, competition, cfg.MinSeason, false)
	if err != nil {
		return err
	}

	contextJSON, err := buildStudyContext(competition, resolved, cfg.TopScorers)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildStudyContext serialises the study's matches and aggregates into
// compact JSON for the model.
func buildStudyContext(competition string, resolved []model.Resolved, top int) (string, error) {
	type matchEntry struct {
		Season    string `json:"season"`
		Home      string `json:"home"`
		Away      string `json:"away"`
		Score     string `json:"score"`
		Result    string `json:"result"`
		Penalties string `json:"penalties,omitempty"`
		Winner    string `json:"winner"`
	}
	matches := make([]matchEntry, 0, len(resolved))
	for _, r := range resolved {
		m := r.Match
		e := matchEntry{
			Season: m.SeasonName,
			Home:   fmt.Sprintf("%s (%s)", m.HomeTeam.Name, m.HomeTeam.Country),
			Away:   fmt.Sprintf("%s (%s)", m.AwayTeam.Name, m.AwayTeam.Country),
			Score:  fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore),
			Result: r.Result.String(),
		}
		if r.Result == model.Shootout {
			e.Penalties = fmt.Sprintf("%d-%d", r.HomePenalties, r.AwayPenalties)
		}
		if r.Winner.Draw {
			e.Winner = "draw"
		} else {
			e.Winner = r.Winner.Team.Name
		}
		matches = append(matches, e)
	}

	doc := map[string]interface{}{
		"subject":       "competition study",
		"competition":   competition,
		"matches":       matches,
		"participation": analysis.CountryParticipation(resolved),
		"wins":          analysis.WinsByCountry(resolved),
		"top_scorers":   analysis.TopScorers(resolved, top),
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		// Provide a cleaner error message for common API errors.
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed, check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
