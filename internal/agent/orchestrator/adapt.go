package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"agent-switchboard/pkg/llmprovider"
)

// Modalities supported by the content adaptation agent.
var AllModalities = []string{"визуал", "аудиал", "кинестетик"}

// AdaptBatch rewrites content for each requested perception modality.
// Adaptations are independent, so they run concurrently; the first failure
// cancels the rest.
func (o *Orchestrator) AdaptBatch(ctx context.Context, content string, modalities []string) (map[string]string, error) {
	if len(modalities) == 0 {
		modalities = AllModalities
	}

	results := make(map[string]string, len(modalities))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)

	for _, modality := range modalities {
		modality := modality
		g.Go(func() error {
			o.l.Infof(gctx, "%s: adapting for %s", LogPrefixAdaptBatch, modality)

			resp, err := o.llm.GenerateContent(gctx, &llmprovider.Request{
				Messages: []llmprovider.Message{{
					Role: "user",
					Parts: []llmprovider.Part{{
						Text: fmt.Sprintf(AdaptPromptTemplate, modality, content),
					}},
				}},
			})
			if err != nil {
				return fmt.Errorf("adaptation for %s failed: %w", modality, err)
			}

			text := firstText(resp.Content.Parts)
			if text == "" {
				return fmt.Errorf("adaptation for %s: %s", modality, ErrMsgEmptyLLMResponse)
			}

			mu.Lock()
			results[modality] = text
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
