package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/noteflow/internal/llm"
	"github.com/fyrsmithlabs/noteflow/internal/notes"
	"github.com/fyrsmithlabs/noteflow/internal/textscan"
)

const todoSystemPrompt = `You extract actionable todo items from handwritten note text.

Respond ONLY with a JSON object of this exact shape:
{"todos": [{"text": "...", "is_checked": false, "due_date": "", "priority": ""}]}

Rules:
- One entry per actionable item.
- is_checked is true only for items marked done ([x], checked box, strikethrough).
- due_date is the raw date text from the note, empty if absent. Do not invent dates.
- priority is "high", "medium", or "" when unstated.`

// todoJSON is the wire shape expected from the LLM.
type todoJSON struct {
	Todos []struct {
		Text      string `json:"text"`
		IsChecked bool   `json:"is_checked"`
		DueDate   string `json:"due_date"`
		Priority  string `json:"priority"`
	} `json:"todos"`
}

// Todos extracts a todo list from text. LLM first, heuristics on any
// failure; never returns an error.
func (e *Engine) Todos(ctx context.Context, text string) notes.TodoList {
	var result notes.TodoList
	if e.useLLM() {
		v, err := e.todosLLM(ctx, text)
		result = orElse(e, "todo", v, err, func() notes.TodoList {
			return HeuristicTodos(text)
		})
	} else {
		result = HeuristicTodos(text)
	}
	return assignTodoIDs(result)
}

// todosLLM is the inner LLM path. Errors are surfaced so Todos can
// fall back explicitly.
func (e *Engine) todosLLM(ctx context.Context, text string) (notes.TodoList, error) {
	raw, err := e.complete(ctx, todoSystemPrompt, text)
	if err != nil {
		return notes.TodoList{}, err
	}
	var wire todoJSON
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &wire); err != nil {
		return notes.TodoList{}, fmt.Errorf("undecodable todo response: %w", err)
	}
	var list notes.TodoList
	for _, t := range wire.Todos {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		list.Todos = append(list.Todos, notes.Todo{
			Text:      strings.TrimSpace(t.Text),
			IsChecked: t.IsChecked,
			DueDate:   t.DueDate,
			Priority:  t.Priority,
		})
	}
	return list, nil
}

// HeuristicTodos extracts todos by line scanning alone. Pure: same
// input, same output. IDs are left empty; the engine assigns them.
func HeuristicTodos(text string) notes.TodoList {
	var list notes.TodoList
	for _, line := range strings.Split(text, "\n") {
		item, ok := textscan.ParseItemLine(line)
		if !ok || item.Text == "" {
			continue
		}
		todo := notes.Todo{
			Text:      item.Text,
			IsChecked: item.IsChecked,
		}
		if due := textscan.FindDate(item.Text); due != "" {
			todo.DueDate = due
		}
		if strings.HasSuffix(item.Text, "!") {
			todo.Priority = "high"
			todo.Text = strings.TrimRight(todo.Text, "! ")
		}
		list.Todos = append(list.Todos, todo)
	}
	return list
}

func assignTodoIDs(list notes.TodoList) notes.TodoList {
	for i := range list.Todos {
		if list.Todos[i].ID == "" {
			list.Todos[i].ID = notes.NewID()
		}
	}
	return list
}
