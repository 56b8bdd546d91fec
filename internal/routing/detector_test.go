package routing

import "testing"

func TestDetect_EmptyInput(t *testing.T) {
	d := NewDetector()

	res := d.Detect("")
	if res.Action != ActionNone {
		t.Errorf("expected ActionNone for empty input, got %q", res.Action)
	}
	if res.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0 for empty input, got %f", res.Confidence)
	}

	res = d.Detect("   \t  ")
	if res.Matched() {
		t.Errorf("whitespace-only input should not match, got %q", res.Action)
	}
}

func TestDetect_NoMatch(t *testing.T) {
	d := NewDetector()

	res := d.Detect("просто обычное сообщение без команд")
	if res.Action != ActionNone {
		t.Errorf("expected no match, got %q (%.2f)", res.Action, res.Confidence)
	}
	if res.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0, got %f", res.Confidence)
	}
}

func TestDetect_ConfidenceRange(t *testing.T) {
	d := NewDetector()

	inputs := []string{
		"",
		"продолжай работать над задачами команды",
		"покажи статус проекта",
		"делегируй эту задачу кому-нибудь из команды проекта",
		"составь план работ по проекту и распланируй неделю",
		"случайный текст про погоду",
	}

	for _, in := range inputs {
		res := d.Detect(in)
		if res.Confidence < 0.0 || res.Confidence > 1.0 {
			t.Errorf("Detect(%q) confidence %f out of [0,1]", in, res.Confidence)
		}
	}
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector()
	input := "продолжай работать над задачами команды"

	first := d.Detect(input)
	second := d.Detect(input)

	if first != second {
		t.Errorf("Detect is not idempotent: %+v vs %+v", first, second)
	}
}

func TestDetect_PositionFactor(t *testing.T) {
	d := NewDetector()

	// Same keyword, early vs late in the message: early must not score lower.
	early := d.Detect("статус проекта: где мы сейчас по всем текущим направлениям работы")
	late := d.Detect("расскажи мне подробно про все текущие направления работы и статус")

	if early.Action != ActionShowStatus || late.Action != ActionShowStatus {
		t.Fatalf("expected show_status for both, got %q / %q", early.Action, late.Action)
	}
	if early.Confidence <= late.Confidence {
		t.Errorf("early mention should outscore late mention: %.3f vs %.3f",
			early.Confidence, late.Confidence)
	}
}

func TestDetect_ContextFactor(t *testing.T) {
	d := NewDetector()

	// continue_work demands context: bare command scores lower than the
	// same command surrounded by coordination vocabulary.
	bare := d.Detect("продолжай")
	rich := d.Detect("продолжай работать над задачами команды проекта")

	if bare.Action != ActionContinueWork || rich.Action != ActionContinueWork {
		t.Fatalf("expected continue_work for both, got %q / %q", bare.Action, rich.Action)
	}
	if bare.Confidence >= rich.Confidence {
		t.Errorf("context-rich input should outscore bare command: %.3f vs %.3f",
			rich.Confidence, bare.Confidence)
	}
}

func TestDetect_BestMatchWins(t *testing.T) {
	d := NewDetector()

	// Explicit manager call has the highest base confidence and no context
	// requirement, so it wins over co-occurring weaker patterns.
	res := d.Detect("вызови менеджера и покажи статус")
	if res.Action != ActionSwitchToPM {
		t.Errorf("expected switch_to_pm, got %q", res.Action)
	}
}

func TestShouldSwitchToPM(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "continue with team context",
			input: "продолжай работать над задачами команды",
			want:  true,
		},
		{
			name:  "explicit manager call",
			input: "вызови менеджера",
			want:  true,
		},
		{
			name:  "plain question",
			input: "как написать функцию на go",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ShouldSwitchToPM(tt.input); got != tt.want {
				t.Errorf("ShouldSwitchToPM(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPositionFactor_Bounds(t *testing.T) {
	tests := []struct {
		index, length int
		want          float64
	}{
		{0, 100, positionEarly},
		{30, 100, positionEarly},
		{31, 100, positionMid},
		{60, 100, positionMid},
		{61, 100, positionLate},
		{99, 100, positionLate},
		{0, 0, positionLate},
	}

	for _, tt := range tests {
		if got := positionFactor(tt.index, tt.length); got != tt.want {
			t.Errorf("positionFactor(%d, %d) = %f, want %f", tt.index, tt.length, got, tt.want)
		}
	}
}
