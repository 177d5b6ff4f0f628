package dialog

import (
	"errors"

	"github.com/daralshefa/chatbot/backend/pkg/logger"
)

// Message types of a dialog node. A node renders buttons iff it carries at
// least one directive.
const (
	MessageTypeText    = "text"
	MessageTypeButtons = "buttons"
)

// ErrEmptySource signals that the knowledge base holds no records. It is a
// reportable condition, not a failure of assembly itself; callers decide
// whether an empty graph is acceptable.
var ErrEmptySource = errors.New("dialog: no knowledge records available")

// DialogNode is one compiled node of the dialog graph, in the wire shape
// served to the chat widget.
type DialogNode struct {
	ID          string            `json:"-"`
	MessageText string            `json:"MessageText"`
	MessageType string            `json:"MessageType"`
	Buttons     []ButtonDirective `json:"ButtonsJSON"`
}

// DialogGraph maps node IDs to compiled dialog nodes.
type DialogGraph map[string]DialogNode

// Assemble compiles flat knowledge records into a dialog graph in a single
// pass over the input. Records sharing a node ID overwrite each other in
// input order, so the last record wins; this mirrors how the knowledge base
// has always been authored and is kept as a documented quirk. Returns
// ErrEmptySource when no records are given.
func Assemble(records []KnowledgeRecord) (DialogGraph, error) {
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	graph := make(DialogGraph, len(records))
	for _, rec := range records {
		if rec.NodeID == "" {
			logger.Warn("Skipping knowledge record without node id")
			continue
		}

		directives, dropped := ParseDirectives(rec.DirectiveSpec)
		if dropped > 0 {
			logger.Warn("Dropped malformed button directives",
				"node", rec.NodeID,
				"dropped", dropped,
			)
		}
		if directives == nil {
			directives = []ButtonDirective{}
		}

		messageType := MessageTypeText
		if len(directives) > 0 {
			messageType = MessageTypeButtons
		}

		graph[rec.NodeID] = DialogNode{
			ID:          rec.NodeID,
			MessageText: rec.MessageText,
			MessageType: messageType,
			Buttons:     directives,
		}
	}

	return graph, nil
}
