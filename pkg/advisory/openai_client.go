// pkg/advisory/openai_client.go

package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"beetguru/entities"
	"beetguru/pkg/assessment/yield"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) SummarizeAssessment(a *entities.Assessment, loc *entities.Location, d yield.Display) string {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are a New Zealand fodder beet agronomist who writes concise, actionable report summaries in Markdown."},
			{"role": "user", "content": renderSummaryPrompt(a, loc, d)},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		// fallback summary (no external call)
		return NewMock().SummarizeAssessment(a, loc, d)
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return NewMock().SummarizeAssessment(a, loc, d)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return NewMock().SummarizeAssessment(a, loc, d)
	}
	return content
}

func renderSummaryPrompt(a *entities.Assessment, loc *entities.Location, d yield.Display) string {
	return fmt.Sprintf(`
Summarize this fodder beet crop assessment for the farmer, as short Markdown
bullet points (no more than 8 lines), with concrete grazing guidance.
- Mention yield per hectare, total crop and feeding days.
- Avoid generic language; every line should be an action or a number.

PADDOCK: %s, %.2f ha
WATER: %s
SOWN: %s   ASSESSED: %s
SAMPLES: %d sample areas
RESULTS: yield %s, total %s, feeding %s, dry matter %s
`, loc.Name, loc.AreaHa, a.WaterType,
		a.SowingDate.Format("2006-01-02"), a.AssessmentDate.Format("2006-01-02"),
		len(a.SampleAreas), d.Yield, d.TotalYield, d.FeedingDays, d.DryMatter)
}
