package classifier

import (
	"context"
	"fmt"
	"strings"

	"clinic-assistant/internal/conversation"
	"clinic-assistant/pkg/llmprovider"
)

// Classify determines the route label for the conversation's latest user
// message. A label outside the enumeration falls back to medical_related
// rather than failing the turn; a missing user message is an error.
func (c *Classifier) Classify(ctx context.Context, st *conversation.State) (Category, error) {
	question, err := st.LastUserMessage(c.window)
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixClassify, err)
	}

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: PromptClassifySystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: question}}},
		},
		Temperature: ClassifyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	label := normalizeLabel(resp.Text())
	if label == "" {
		c.l.Warnf(ctx, "%s: %s, falling back to %s", LogPrefixClassify, ReasonEmptyResponse, ClassifyFallbackLabel)
		return ClassifyFallbackLabel, nil
	}

	category, ok := ParseCategory(label)
	if !ok {
		c.l.Warnf(ctx, "%s: %s (%q), falling back to %s", LogPrefixClassify, ReasonUnknownLabel, label, ClassifyFallbackLabel)
		return ClassifyFallbackLabel, nil
	}

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, category)
	return category, nil
}

// normalizeLabel strips whitespace, quoting, and case from the raw model
// reply.
func normalizeLabel(raw string) string {
	label := strings.TrimSpace(raw)
	label = strings.Trim(label, "'\"`.")
	return strings.ToLower(label)
}
