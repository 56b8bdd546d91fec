package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery    = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixCleanupSessions = "internal.agent.orchestrator.cleanupExpiredSessions"
	LogPrefixAdaptBatch      = "internal.agent.orchestrator.AdaptBatch"
)

// System prompt
const (
	SystemPromptAgent = `Ты — ассистент команды специализированных агентов, управляемый маршрутизатором компетенций.
Твоя задача — отвечать на вопросы пользователя, используя контекст базы знаний и доступные инструменты.

Правила:
1. Если задача вне компетенции текущего агента, вызови check_competency и предложи делегирование.
2. Перед ответом на предметные вопросы используй search_knowledge.
3. Обновляй статусы задач через update_task по мере выполнения.
4. Отвечай кратко и по делу, на языке пользователя.`

	AdaptPromptTemplate = `Адаптируй следующий ответ под канал восприятия "%s".
Сохрани смысл полностью, измени только подачу: для визуала — структура, списки и схемы словами; для аудиала — разговорный ритм и повторы ключевых мыслей; для кинестетика — практические шаги и действия.

Текст:
%s`
)

// Error messages
const (
	ErrMsgEmptyLLMResponse = "empty LLM response"
	ErrMsgMaxStepsExceeded = "Ассистент превысил лимит шагов рассуждения. Попробуйте разбить вопрос на части."
)

// Configuration
const (
	MaxAgentSteps          = 5
	MaxSessionHistory      = 10 // last 5 turns (10 messages)
	SessionCleanupInterval = 5  // minutes
)
