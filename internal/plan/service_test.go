package plan

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"почини баг в авторизации", KindBugfix},
		{"сделай рефакторинг модуля оплаты", KindRefactor},
		{"проведи аудит безопасности", KindAudit},
		{"добавь функцию экспорта", KindFeature},
		{"что-то совсем другое", KindGeneric},
		{"", KindGeneric},
	}

	for _, tt := range tests {
		if got := DetectKind(tt.input); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	s := New()

	p := s.Build("добавь функцию экспорта отчётов")
	if p.Kind != KindFeature {
		t.Errorf("expected feature plan, got %q", p.Kind)
	}
	if p.ID == "" {
		t.Error("plan must get an id")
	}
	if len(p.Tasks) == 0 {
		t.Fatal("plan must have microtasks")
	}
	for _, task := range p.Tasks {
		if task.Status != StatusPending {
			t.Errorf("fresh task %s must be pending, got %q", task.ID, task.Status)
		}
	}
}

func TestBuild_DoesNotShareTemplate(t *testing.T) {
	s := New()

	first := s.Build("почини баг")
	if err := s.UpdateStatus(first, "step-1", StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := s.Build("почини баг")
	if second.Tasks[0].Status != StatusPending {
		t.Error("mutating one plan must not leak into the template")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := New()
	p := s.Build("задача")

	if err := s.UpdateStatus(p, "step-1", StatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Tasks[0].Status != StatusInProgress {
		t.Errorf("status not applied, got %q", p.Tasks[0].Status)
	}

	err := s.UpdateStatus(p, "no-such-step", StatusCompleted)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	err = s.UpdateStatus(p, "step-1", Status("bogus"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestNext_HonorsDependencies(t *testing.T) {
	s := New()
	p := s.Build("добавь функцию")

	next, ok := s.Next(p)
	if !ok || next.ID != "step-1" {
		t.Fatalf("expected step-1 first, got %v", next)
	}

	// step-3 depends on step-2 which depends on step-1.
	if err := s.UpdateStatus(p, "step-1", StatusCompleted); err != nil {
		t.Fatal(err)
	}
	next, ok = s.Next(p)
	if !ok || next.ID != "step-2" {
		t.Fatalf("expected step-2 after step-1, got %v", next)
	}

	// Skipped dependencies also unblock.
	if err := s.UpdateStatus(p, "step-2", StatusSkipped); err != nil {
		t.Fatal(err)
	}
	next, ok = s.Next(p)
	if !ok || next.ID != "step-3" {
		t.Fatalf("expected step-3 after skipping step-2, got %v", next)
	}
}

func TestNext_NothingReady(t *testing.T) {
	s := New()
	p := s.Build("добавь функцию")

	for i := range p.Tasks {
		p.Tasks[i].Status = StatusCompleted
	}

	if _, ok := s.Next(p); ok {
		t.Error("fully completed plan must have no next task")
	}
}

func TestGetStats(t *testing.T) {
	s := New()
	p := s.Build("почини баг") // 4 microtasks

	stats := s.GetStats(p)
	if stats.Total != 4 || stats.Completed != 0 || stats.Progress != 0 {
		t.Errorf("unexpected fresh stats: %+v", stats)
	}

	s.UpdateStatus(p, "step-1", StatusCompleted)
	s.UpdateStatus(p, "step-2", StatusCompleted)

	stats = s.GetStats(p)
	if stats.Completed != 2 || stats.Pending != 2 {
		t.Errorf("unexpected stats after two completions: %+v", stats)
	}
	if stats.Progress != 50 {
		t.Errorf("expected 50%% progress, got %f", stats.Progress)
	}
}

func TestShouldCommit(t *testing.T) {
	s := New()

	t.Run("fresh plan", func(t *testing.T) {
		p := s.Build("добавь функцию")
		if ok, _ := s.ShouldCommit(p); ok {
			t.Error("fresh plan must not trigger a commit")
		}
	})

	t.Run("half completed", func(t *testing.T) {
		p := s.Build("почини баг") // 4 tasks
		s.UpdateStatus(p, "step-1", StatusCompleted)
		s.UpdateStatus(p, "step-2", StatusCompleted)

		ok, reason := s.ShouldCommit(p)
		if !ok {
			t.Fatal("half-completed plan must trigger a commit")
		}
		if reason != "at least half of microtasks completed" {
			t.Errorf("unexpected reason: %q", reason)
		}
	})

	t.Run("all completed", func(t *testing.T) {
		p := s.Build("почини баг")
		for _, task := range p.Tasks {
			s.UpdateStatus(p, task.ID, StatusCompleted)
		}

		ok, reason := s.ShouldCommit(p)
		if !ok || reason != "all microtasks completed" {
			t.Errorf("expected all-completed commit, got %v %q", ok, reason)
		}
	})

	t.Run("implementation subset completed", func(t *testing.T) {
		p := s.Build("добавь функцию") // 5 tasks, one implementation-tagged
		s.UpdateStatus(p, "step-3", StatusCompleted)

		ok, reason := s.ShouldCommit(p)
		if !ok {
			t.Fatal("completed implementation subset must trigger a commit")
		}
		if reason != "implementation microtasks completed" {
			t.Errorf("unexpected reason: %q", reason)
		}
	})
}

func TestRender(t *testing.T) {
	s := New()
	p := s.Build("почини баг")
	s.UpdateStatus(p, "step-1", StatusCompleted)
	s.UpdateStatus(p, "step-2", StatusInProgress)

	out := s.Render(p)
	if !strings.Contains(out, "- [x] Воспроизвести проблему") {
		t.Errorf("completed step must render checked:\n%s", out)
	}
	if !strings.Contains(out, "в работе") {
		t.Errorf("in-progress step must be marked:\n%s", out)
	}
	if !strings.Contains(out, "Прогресс: 1/4") {
		t.Errorf("progress line missing:\n%s", out)
	}
}
