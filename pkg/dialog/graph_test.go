package dialog

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestAssembleEmptySource(t *testing.T) {
	graph, err := Assemble(nil)
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("Assemble(nil) err = %v, want ErrEmptySource", err)
	}
	if graph != nil {
		t.Fatalf("Assemble(nil) graph = %v, want nil", graph)
	}
}

func TestAssembleMessageTypeDerivation(t *testing.T) {
	records := []KnowledgeRecord{
		{NodeID: "welcome", MessageText: "أهلاً بك", DirectiveSpec: "الرئيسية->home"},
		{NodeID: "hours", MessageText: "We are open 9-5."},
	}

	graph, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(graph) != 2 {
		t.Fatalf("graph size = %d, want 2", len(graph))
	}

	if got := graph["welcome"].MessageType; got != MessageTypeButtons {
		t.Fatalf("welcome MessageType = %q, want %q", got, MessageTypeButtons)
	}
	if got := graph["hours"].MessageType; got != MessageTypeText {
		t.Fatalf("hours MessageType = %q, want %q", got, MessageTypeText)
	}
	if graph["hours"].Buttons == nil || len(graph["hours"].Buttons) != 0 {
		t.Fatalf("hours Buttons = %v, want empty non-nil slice", graph["hours"].Buttons)
	}
}

func TestAssembleDuplicateNodeIDLastWins(t *testing.T) {
	records := []KnowledgeRecord{
		{NodeID: "home", MessageText: "old"},
		{NodeID: "other", MessageText: "untouched"},
		{NodeID: "home", MessageText: "new", DirectiveSpec: "Services->services"},
	}

	graph, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(graph) != 2 {
		t.Fatalf("graph size = %d, want 2", len(graph))
	}

	home := graph["home"]
	if home.MessageText != "new" {
		t.Fatalf("home MessageText = %q, want %q", home.MessageText, "new")
	}
	if home.MessageType != MessageTypeButtons {
		t.Fatalf("home MessageType = %q, want %q", home.MessageType, MessageTypeButtons)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	records := []KnowledgeRecord{
		{NodeID: "a", MessageText: "A", DirectiveSpec: "B->b; C->link:https://example.com"},
		{NodeID: "b", MessageText: "B"},
		{NodeID: "a", MessageText: "A2"},
	}

	first, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	second, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated assembly differs:\n%+v\n%+v", first, second)
	}
}

func TestAssembleSkipsRecordsWithoutNodeID(t *testing.T) {
	records := []KnowledgeRecord{
		{NodeID: "", MessageText: "orphan"},
		{NodeID: "home", MessageText: "hi"},
	}

	graph, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(graph) != 1 {
		t.Fatalf("graph size = %d, want 1", len(graph))
	}
	if _, ok := graph[""]; ok {
		t.Fatal("graph contains a node with empty id")
	}
}

func TestDialogNodeWireShape(t *testing.T) {
	records := []KnowledgeRecord{
		{NodeID: "home", MessageText: "مرحبا", DirectiveSpec: "الموقع->link:https://maps.example/x"},
	}

	graph, err := Assemble(records)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	raw, err := json.Marshal(graph["home"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"MessageText":"مرحبا","MessageType":"buttons","ButtonsJSON":[{"text":"الموقع","link":"https://maps.example/x"}]}`
	if string(raw) != want {
		t.Fatalf("node wire shape = %s, want %s", raw, want)
	}
}
