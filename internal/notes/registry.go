package notes

import (
	"strings"
)

// TypeConfig describes one note type: its hashtag trigger, spoken
// trigger phrases, and a display label. Configs are plain values; the
// registry owns the lookup tables.
type TypeConfig struct {
	Type         NoteType `json:"type"`
	Trigger      string   `json:"trigger"`       // hashtag form, e.g. "#todo#"
	VoicePhrases []string `json:"voice_phrases"` // lowercase spoken forms
	Label        string   `json:"label"`
}

// TypeRegistry maps triggers to note types. It is built once at startup
// and passed to the pipeline; it is immutable after construction.
type TypeRegistry struct {
	byType    map[NoteType]TypeConfig
	byTrigger map[string]NoteType
	byPhrase  map[string]NoteType
}

// NewTypeRegistry builds a registry from the given configs. Later
// configs win on trigger collisions.
func NewTypeRegistry(configs []TypeConfig) *TypeRegistry {
	r := &TypeRegistry{
		byType:    make(map[NoteType]TypeConfig, len(configs)),
		byTrigger: make(map[string]NoteType, len(configs)),
		byPhrase:  make(map[string]NoteType),
	}
	for _, c := range configs {
		r.byType[c.Type] = c
		if c.Trigger != "" {
			r.byTrigger[strings.ToLower(c.Trigger)] = c.Type
		}
		for _, p := range c.VoicePhrases {
			r.byPhrase[strings.ToLower(p)] = c.Type
		}
	}
	return r
}

// DefaultTypeRegistry returns the registry for the built-in note types.
func DefaultTypeRegistry() *TypeRegistry {
	configs := []TypeConfig{
		{Type: TypeTodo, Trigger: "#todo#", VoicePhrases: []string{"new todo", "add task"}, Label: "To-Do"},
		{Type: TypeShopping, Trigger: "#shopping#", VoicePhrases: []string{"shopping list"}, Label: "Shopping List"},
		{Type: TypeMeeting, Trigger: "#meeting#", VoicePhrases: []string{"meeting notes"}, Label: "Meeting"},
		{Type: TypeEvent, Trigger: "#event#", VoicePhrases: []string{"new event", "calendar"}, Label: "Event"},
		{Type: TypeContact, Trigger: "#contact#", VoicePhrases: []string{"new contact"}, Label: "Contact"},
		{Type: TypeRecipe, Trigger: "#recipe#", VoicePhrases: []string{"new recipe"}, Label: "Recipe"},
		{Type: TypeIdea, Trigger: "#idea#", VoicePhrases: []string{"new idea"}, Label: "Idea"},
		{Type: TypeJournal, Trigger: "#journal#", VoicePhrases: []string{"journal entry"}, Label: "Journal"},
		{Type: TypeFinance, Trigger: "#finance#", VoicePhrases: []string{"expense", "receipt"}, Label: "Finance"},
		{Type: TypeTravel, Trigger: "#travel#", VoicePhrases: []string{"travel plan"}, Label: "Travel"},
		{Type: TypeHealth, Trigger: "#health#", VoicePhrases: []string{"health log"}, Label: "Health"},
		{Type: TypeReference, Trigger: "#reference#", VoicePhrases: []string{"reference note"}, Label: "Reference"},
		{Type: TypeGeneral, Trigger: "#note#", VoicePhrases: []string{"new note"}, Label: "Note"},
	}
	return NewTypeRegistry(configs)
}

// LookupTrigger resolves a hashtag trigger to a note type. Matching is
// case-insensitive and tolerates surrounding whitespace.
func (r *TypeRegistry) LookupTrigger(trigger string) (NoteType, bool) {
	t, ok := r.byTrigger[strings.ToLower(strings.TrimSpace(trigger))]
	return t, ok
}

// LookupVoicePhrase resolves a spoken trigger phrase to a note type.
func (r *TypeRegistry) LookupVoicePhrase(phrase string) (NoteType, bool) {
	t, ok := r.byPhrase[strings.ToLower(strings.TrimSpace(phrase))]
	return t, ok
}

// Config returns the config for a note type.
func (r *TypeRegistry) Config(t NoteType) (TypeConfig, bool) {
	c, ok := r.byType[t]
	return c, ok
}

// Types returns the registered note types in stable order.
func (r *TypeRegistry) Types() []NoteType {
	var out []NoteType
	for _, t := range AllTypes() {
		if _, ok := r.byType[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// FindTrigger scans text for the first registered hashtag trigger and
// returns it with its type. Used when the caller has no separate
// trigger field and the marker is embedded in the OCR output.
func (r *TypeRegistry) FindTrigger(text string) (string, NoteType, bool) {
	lower := strings.ToLower(text)
	for _, t := range AllTypes() {
		c, ok := r.byType[t]
		if !ok || c.Trigger == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(c.Trigger)) {
			return c.Trigger, t, true
		}
	}
	return "", TypeGeneral, false
}
