package model

// AgentKind identifies one of the specialized assistant agents.
// The set is closed: routing and competency tables are declared per kind,
// and AllAgentKinds fixes the deterministic scan order used for delegate
// selection tie-breaking.
type AgentKind string

const (
	AgentProjectManager    AgentKind = "project_manager"
	AgentSecurityAudit     AgentKind = "security_audit_agent"
	AgentAPIDevelopment    AgentKind = "api_development_agent"
	AgentTesting           AgentKind = "testing_agent"
	AgentUIUX              AgentKind = "uiux_enhancement_agent"
	AgentContentAdaptation AgentKind = "content_adaptation_agent"
)

// AllAgentKinds lists every agent kind in declaration order.
// This order is load-bearing: delegate suggestion scans it front to back
// and keeps the first best-scoring candidate.
var AllAgentKinds = []AgentKind{
	AgentProjectManager,
	AgentSecurityAudit,
	AgentAPIDevelopment,
	AgentTesting,
	AgentUIUX,
	AgentContentAdaptation,
}

// IsValid reports whether k is a known agent kind.
func (k AgentKind) IsValid() bool {
	switch k {
	case AgentProjectManager, AgentSecurityAudit, AgentAPIDevelopment,
		AgentTesting, AgentUIUX, AgentContentAdaptation:
		return true
	}
	return false
}

// String returns the wire representation of the agent kind.
func (k AgentKind) String() string {
	return string(k)
}

// ParseAgentKind converts a string to an AgentKind, returning ok=false for
// unknown values so callers can take the reject path explicitly.
func ParseAgentKind(s string) (AgentKind, bool) {
	k := AgentKind(s)
	return k, k.IsValid()
}

// Priority grades how urgently a routing result should be acted on.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)
