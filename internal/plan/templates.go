package plan

import (
	"strings"
	"time"
)

// kindKeywords maps task-kind stems to plan kinds, checked in declaration
// order; the first hit wins, otherwise the generic template is used.
var kindKeywords = []struct {
	keywords []string
	kind     Kind
}{
	{[]string{"баг", "ошибк", "почини", "исправ", "не работает"}, KindBugfix},
	{[]string{"рефактор", "переработ", "упрости"}, KindRefactor},
	{[]string{"аудит", "безопасност", "уязвимост"}, KindAudit},
	{[]string{"функци", "фич", "добав", "реализуй", "сделай"}, KindFeature},
}

// DetectKind picks the plan template for a task description.
func DetectKind(description string) Kind {
	lower := strings.ToLower(description)
	for _, entry := range kindKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.kind
			}
		}
	}
	return KindGeneric
}

// templates holds the fixed microtask sequences per kind. Templates are
// read-only; Build copies them into fresh Plan values.
var templates = map[Kind][]Microtask{
	KindFeature: {
		{ID: "step-1", Title: "Изучить требования и существующий код", EstimatedTime: 10 * time.Minute, Tag: TagAnalysis},
		{ID: "step-2", Title: "Спроектировать решение", EstimatedTime: 15 * time.Minute, Tag: TagAnalysis, DependsOn: []string{"step-1"}},
		{ID: "step-3", Title: "Реализовать основную логику", EstimatedTime: 30 * time.Minute, Tag: TagImplementation, DependsOn: []string{"step-2"}},
		{ID: "step-4", Title: "Написать тесты", EstimatedTime: 20 * time.Minute, Tag: TagVerification, DependsOn: []string{"step-3"}},
		{ID: "step-5", Title: "Проверить и зафиксировать изменения", EstimatedTime: 10 * time.Minute, Tag: TagVerification, DependsOn: []string{"step-4"}},
	},
	KindBugfix: {
		{ID: "step-1", Title: "Воспроизвести проблему", EstimatedTime: 15 * time.Minute, Tag: TagAnalysis},
		{ID: "step-2", Title: "Найти причину", EstimatedTime: 20 * time.Minute, Tag: TagAnalysis, DependsOn: []string{"step-1"}},
		{ID: "step-3", Title: "Исправить", EstimatedTime: 20 * time.Minute, Tag: TagImplementation, DependsOn: []string{"step-2"}},
		{ID: "step-4", Title: "Добавить регрессионный тест", EstimatedTime: 15 * time.Minute, Tag: TagVerification, DependsOn: []string{"step-3"}},
	},
	KindRefactor: {
		{ID: "step-1", Title: "Зафиксировать текущее поведение тестами", EstimatedTime: 20 * time.Minute, Tag: TagVerification},
		{ID: "step-2", Title: "Провести рефакторинг", EstimatedTime: 30 * time.Minute, Tag: TagImplementation, DependsOn: []string{"step-1"}},
		{ID: "step-3", Title: "Убедиться, что тесты проходят", EstimatedTime: 10 * time.Minute, Tag: TagVerification, DependsOn: []string{"step-2"}},
	},
	KindAudit: {
		{ID: "step-1", Title: "Составить список проверяемых компонентов", EstimatedTime: 10 * time.Minute, Tag: TagAnalysis},
		{ID: "step-2", Title: "Проверить обработку входных данных", EstimatedTime: 25 * time.Minute, Tag: TagAnalysis, DependsOn: []string{"step-1"}},
		{ID: "step-3", Title: "Проверить авторизацию и доступы", EstimatedTime: 25 * time.Minute, Tag: TagAnalysis, DependsOn: []string{"step-1"}},
		{ID: "step-4", Title: "Составить отчёт с рекомендациями", EstimatedTime: 20 * time.Minute, Tag: TagImplementation, DependsOn: []string{"step-2", "step-3"}},
	},
	KindGeneric: {
		{ID: "step-1", Title: "Разобраться в задаче", EstimatedTime: 10 * time.Minute, Tag: TagAnalysis},
		{ID: "step-2", Title: "Выполнить работу", EstimatedTime: 30 * time.Minute, Tag: TagImplementation, DependsOn: []string{"step-1"}},
		{ID: "step-3", Title: "Проверить результат", EstimatedTime: 10 * time.Minute, Tag: TagVerification, DependsOn: []string{"step-2"}},
	},
}
