package dialog

import (
	"encoding/json"
	"strings"
)

const (
	linkMarker = "->link:"
	nodeMarker = "->"
)

// KnowledgeRecord is one authored row of the knowledge base. DirectiveSpec
// holds the raw button specification string and may be empty for plain text
// nodes.
type KnowledgeRecord struct {
	NodeID        string
	MessageText   string
	DirectiveSpec string
}

// ButtonDirective links a button label to either another dialog node or an
// external link. Exactly one of GoToID and Link is set.
type ButtonDirective struct {
	Label  string
	GoToID string
	Link   string
}

// IsLink reports whether the directive targets an external link instead of a
// dialog node.
func (d ButtonDirective) IsLink() bool {
	return d.Link != ""
}

// MarshalJSON emits the wire shape consumed by the chat widget: the field
// name selects the directive kind.
func (d ButtonDirective) MarshalJSON() ([]byte, error) {
	if d.IsLink() {
		return json.Marshal(struct {
			Text string `json:"text"`
			Link string `json:"link"`
		}{Text: d.Label, Link: d.Link})
	}
	return json.Marshal(struct {
		Text   string `json:"text"`
		GoToID string `json:"goToID"`
	}{Text: d.Label, GoToID: d.GoToID})
}

// ParseDirectives parses an authored button specification into ordered
// directives. Clauses are separated by ";" and are either "LABEL->NODE_ID"
// or "LABEL->link:URL"; whitespace around labels and targets is
// insignificant. Clauses matching neither form are dropped and counted so
// operators can observe authoring typos. Blank clauses (trailing separators)
// are ignored without counting.
func ParseDirectives(spec string) ([]ButtonDirective, int) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, 0
	}

	var directives []ButtonDirective
	dropped := 0

	for clause := range strings.SplitSeq(spec, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		// The link marker must win over the plain node marker, otherwise
		// "A->link:x" would parse as a node reference to "link:x".
		if label, target, ok := strings.Cut(clause, linkMarker); ok {
			directives = append(directives, ButtonDirective{
				Label: strings.TrimSpace(label),
				Link:  strings.TrimSpace(target),
			})
			continue
		}
		if label, target, ok := strings.Cut(clause, nodeMarker); ok {
			directives = append(directives, ButtonDirective{
				Label:  strings.TrimSpace(label),
				GoToID: strings.TrimSpace(target),
			})
			continue
		}

		dropped++
	}

	return directives, dropped
}
