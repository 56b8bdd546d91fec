package routing

import "strings"

// Tuning constants for confidence adjustment.
const (
	// Position factor: commands stated early are weighted higher.
	positionEarlyBound = 0.3
	positionMidBound   = 0.6
	positionEarly      = 1.0
	positionMid        = 0.9
	positionLate       = 0.8

	// Context factor: base plus a bonus per co-occurring indicator, capped at 1.
	contextBase  = 0.5
	contextBonus = 0.25

	// switchThreshold is the minimum confidence for ShouldSwitchToPM.
	switchThreshold = 0.7
)

// Detector scans text against the static command pattern table.
// Construct once at startup and pass by reference; it holds no mutable state.
type Detector struct {
	patterns   []KeywordPattern
	indicators []string
}

// NewDetector creates a detector over the built-in pattern table.
func NewDetector() *Detector {
	return &Detector{
		patterns:   commandPatterns,
		indicators: contextIndicators,
	}
}

// Detect returns the best-matching action and its adjusted confidence.
// Pure function of the table and the input: no side effects, identical
// output for identical input. No match returns (ActionNone, 0.0).
func (d *Detector) Detect(text string) DetectionResult {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return DetectionResult{Action: ActionNone, Confidence: 0.0}
	}

	best := DetectionResult{Action: ActionNone, Confidence: 0.0}

	for _, p := range d.patterns {
		adjusted, ok := d.score(lower, p)
		if !ok {
			continue
		}
		// Strict > keeps the first-seen pattern on ties (stable scan order).
		if adjusted > best.Confidence {
			best = DetectionResult{Action: p.Action, Confidence: adjusted}
		}
	}

	return best
}

// score computes the adjusted confidence of one pattern against lowered text.
// ok is false when no keyword of the pattern occurs in the text.
func (d *Detector) score(lower string, p KeywordPattern) (float64, bool) {
	idx := -1
	for _, kw := range p.Keywords {
		if i := strings.Index(lower, kw); i >= 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}

	adjusted := p.BaseConfidence * positionFactor(idx, len(lower))
	if p.ContextRequired {
		adjusted *= d.contextFactor(lower)
	}

	return clamp01(adjusted), true
}

// positionFactor rewards command words stated early in the message.
func positionFactor(index, length int) float64 {
	if length == 0 {
		return positionLate
	}
	ratio := float64(index) / float64(length)
	switch {
	case ratio <= positionEarlyBound:
		return positionEarly
	case ratio <= positionMidBound:
		return positionMid
	default:
		return positionLate
	}
}

// contextFactor scales a context-demanding pattern by how much coordination
// vocabulary surrounds it.
func (d *Detector) contextFactor(lower string) float64 {
	factor := contextBase
	for _, indicator := range d.indicators {
		if strings.Contains(lower, indicator) {
			factor += contextBonus
		}
	}
	if factor > 1.0 {
		factor = 1.0
	}
	return factor
}

// ShouldSwitchToPM reports whether the message is a coordination command
// confident enough to hand the conversation to the project manager.
func (d *Detector) ShouldSwitchToPM(text string) bool {
	res := d.Detect(text)
	return coordinationActions[res.Action] && res.Confidence >= switchThreshold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
