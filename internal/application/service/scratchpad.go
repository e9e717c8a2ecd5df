package service

import (
	"strings"

	"react-agent/internal/domain/entity"
)

const (
	ObservationPrefix = "Observation: "
	ThoughtPrefix     = "Thought: "
)

// FormatScratchpad replays the transcript so the model can continue its
// reasoning where it stopped.
func FormatScratchpad(transcript []entity.TranscriptEntry) string {
	var b strings.Builder
	for _, entry := range transcript {
		b.WriteString(entry.Action.Log)
		b.WriteString(ObservationPrefix)
		b.WriteString(entry.Observation)
		b.WriteString("\n")
		b.WriteString(ThoughtPrefix)
	}
	return b.String()
}
