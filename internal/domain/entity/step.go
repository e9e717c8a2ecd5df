package entity

// Step is the outcome of parsing one LLM completion: either an AgentAction
// or an AgentFinish.
type Step interface {
	isStep()
}

// AgentAction asks the loop to run Tool with ToolInput. Log holds the
// reasoning text that led to the action and is replayed in the scratchpad.
type AgentAction struct {
	Tool      ToolName
	ToolInput string
	Log       string
}

// AgentFinish terminates the loop with Output as the final answer.
type AgentFinish struct {
	Output string
	Log    string
}

func (AgentAction) isStep() {}
func (AgentFinish) isStep() {}

type TranscriptEntry struct {
	Action      AgentAction
	Observation string
}
