package service

import (
	"regexp"
	"strings"

	"react-agent/internal/domain/entity"
)

const (
	FinalAnswerMarker = "Final Answer:"

	MissingActionReason      = "Invalid Format: Missing 'Action:' after 'Thought:'"
	MissingActionInputReason = "Invalid Format: Missing 'Action Input:' after 'Action:'"
)

var (
	actionRe     = regexp.MustCompile(`(?s)Action\s*\d*\s*:[\s]*(.*?)[\s]*Action\s*\d*\s*Input\s*\d*\s*:[\s]*(.*)`)
	actionOnlyRe = regexp.MustCompile(`(?s)Action\s*\d*\s*:[\s]*(.*?)`)

	leakedObservation = "\n" + strings.TrimSpace(ObservationPrefix)
)

// ParseStep classifies a raw completion. A final answer always wins over an
// action in the same text, and its output follows the last marker.
func ParseStep(text string) (entity.Step, error) {
	if idx := strings.LastIndex(text, FinalAnswerMarker); idx >= 0 {
		return entity.AgentFinish{
			Output: strings.TrimSpace(text[idx+len(FinalAnswerMarker):]),
			Log:    text,
		}, nil
	}

	m := actionRe.FindStringSubmatchIndex(text)
	if m == nil {
		if actionOnlyRe.MatchString(text) {
			return nil, &entity.ParseError{Output: text, Reason: MissingActionInputReason}
		}
		return nil, &entity.ParseError{Output: text, Reason: MissingActionReason}
	}

	tool := strings.TrimSpace(text[m[2]:m[3]])
	if tool == "" {
		return nil, &entity.ParseError{Output: text, Reason: MissingActionReason}
	}

	inputStart, inputEnd := m[4], m[5]
	if cut := strings.Index(text[inputStart:inputEnd], leakedObservation); cut >= 0 {
		inputEnd = inputStart + cut
	}

	return entity.AgentAction{
		Tool:      entity.ToolName(tool),
		ToolInput: strings.TrimSpace(text[inputStart:inputEnd]),
		Log:       strings.TrimRight(text[:inputEnd], " \t\r\n") + "\n",
	}, nil
}
