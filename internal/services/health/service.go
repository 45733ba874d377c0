package health

// Service encapsulates health-related checks.
type Service struct {
	llmConfigured bool
	model         string
}

// NewService constructs a new health service.
func NewService(llmConfigured bool, model string) *Service {
	return &Service{llmConfigured: llmConfigured, model: model}
}

// Status is the health payload.
type Status struct {
	OK            bool   `json:"ok"`
	LLMConfigured bool   `json:"llmConfigured"`
	Model         string `json:"model,omitempty"`
}

// Status reports liveness and whether the model credential is configured.
// A missing credential does not make the process unhealthy.
func (s *Service) Status() Status {
	return Status{OK: true, LLMConfigured: s.llmConfigured, Model: s.model}
}
