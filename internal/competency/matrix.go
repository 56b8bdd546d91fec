package competency

import "agent-switchboard/internal/model"

// competencyMatrix declares one Area per agent kind. Keywords are lowercase
// stems matched by substring, so inflected Russian forms hit as well.
// The map is never mutated after init; scan order comes from
// model.AllAgentKinds, not map iteration.
var competencyMatrix = map[model.AgentKind]Area{
	model.AgentProjectManager: {
		Primary:    []string{"координация", "план", "приоритет", "делегирование", "управление"},
		Secondary:  []string{"срок", "команда", "проект"},
		Exclusions: nil,
		Threshold:  0.25,
	},
	model.AgentSecurityAudit: {
		Primary:    []string{"безопасность", "уязвимость", "sql injection", "xss", "аудит", "шифрование"},
		Secondary:  []string{"защита", "авторизация", "токен", "pentest"},
		Exclusions: []string{"дизайн", "верстка"},
		Threshold:  0.3,
	},
	model.AgentAPIDevelopment: {
		Primary:    []string{"api", "rest", "endpoint", "swagger", "маршрутизация"},
		Secondary:  []string{"интеграция", "json", "бэкенд"},
		Exclusions: []string{"дизайн", "макет", "фигма"},
		Threshold:  0.3,
	},
	model.AgentTesting: {
		Primary:    []string{"тест", "unit", "покрытие", "автотест", "регрессия"},
		Secondary:  []string{"проверка", "качество", "pytest"},
		Exclusions: []string{"дизайн"},
		Threshold:  0.3,
	},
	model.AgentUIUX: {
		Primary:    []string{"дизайн", "интерфейс", "юзабилити", "верстка", "макет"},
		Secondary:  []string{"кнопка", "цвет", "шрифт"},
		Exclusions: []string{"sql", "шифрование"},
		Threshold:  0.3,
	},
	model.AgentContentAdaptation: {
		Primary:    []string{"адаптация", "визуал", "аудиал", "кинестетик", "модальность"},
		Secondary:  []string{"контент", "стиль", "подача"},
		Exclusions: []string{"sql"},
		Threshold:  0.3,
	},
}

// fallbackAgent receives everything nothing else scores on.
const fallbackAgent = model.AgentProjectManager
