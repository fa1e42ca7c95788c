package notes

import (
	"github.com/google/uuid"
)

// Extracted records are transient DTOs: produced by one extraction
// call, consumed immediately by the caller to materialize persisted
// sub-entities, then discarded. None of them reference the note they
// came from. Date and time fields stay as raw strings; parsing is the
// consumer's job (see internal/dates).

// Todo is a single actionable item found in note text.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsChecked bool   `json:"is_checked"`
	DueDate   string `json:"due_date,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// TodoList is the result of todo extraction over one note.
type TodoList struct {
	Todos []Todo `json:"todos"`
}

// Event is a calendar event extracted from note text.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Contact is a person record extracted from note text.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ShoppingItem is one entry on a shopping list.
type ShoppingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Category  string `json:"category,omitempty"`
	IsChecked bool   `json:"is_checked"`
}

// ShoppingList is the result of shopping extraction over one note.
type ShoppingList struct {
	StoreName string         `json:"store_name,omitempty"`
	Items     []ShoppingItem `json:"items"`
	Notes     string         `json:"notes,omitempty"`
}

// NewID returns a stable identifier for an extracted record.
func NewID() string {
	return uuid.NewString()
}
