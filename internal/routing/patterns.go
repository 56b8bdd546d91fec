package routing

// commandPatterns is the static pattern table. Declaration order matters:
// Detect scans front to back and keeps the first pattern on equal scores.
var commandPatterns = []KeywordPattern{
	{
		Keywords:        []string{"продолжай", "продолжи", "работай дальше", "не останавливайся"},
		Action:          ActionContinueWork,
		BaseConfidence:  0.9,
		ContextRequired: true,
	},
	{
		Keywords:       []string{"переключись на менеджера", "вызови менеджера", "нужен менеджер", "позови менеджера"},
		Action:         ActionSwitchToPM,
		BaseConfidence: 0.95,
	},
	{
		Keywords:       []string{"статус", "прогресс", "что сделано", "как продвигается"},
		Action:         ActionShowStatus,
		BaseConfidence: 0.85,
	},
	{
		Keywords:       []string{"составь план", "распланируй", "разбей на шаги"},
		Action:         ActionCreatePlan,
		BaseConfidence: 0.8,
	},
	{
		Keywords:        []string{"делегируй", "передай задачу", "поручи"},
		Action:          ActionDelegateTask,
		BaseConfidence:  0.85,
		ContextRequired: true,
	},
}

// contextIndicators are secondary words whose presence raises the context
// factor for patterns with ContextRequired. Stems, so inflected forms match
// by substring ("команды", "командой" → "команд").
var contextIndicators = []string{
	"менеджер",
	"проект",
	"команд",
	"задач",
	"делегир",
}

// coordinationActions are the actions that justify handing the conversation
// over to the project manager agent.
var coordinationActions = map[Action]bool{
	ActionContinueWork: true,
	ActionSwitchToPM:   true,
	ActionDelegateTask: true,
	ActionShowStatus:   true,
}
