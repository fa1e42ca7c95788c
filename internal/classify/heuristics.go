package classify

import (
	"strings"

	"github.com/fyrsmithlabs/noteflow/internal/dates"
	"github.com/fyrsmithlabs/noteflow/internal/notes"
	"github.com/fyrsmithlabs/noteflow/internal/textscan"
)

// Heuristic confidence bands. All automatic pattern detectors score
// inside [0.70, 0.85]; the general fallback sits below the band so the
// UI can tell "matched nothing" from "matched something".
const (
	confidenceContact  = 0.80
	confidenceEvent    = 0.78
	confidenceTodo     = 0.85
	confidenceShopping = 0.82
	confidenceMeeting  = 0.75
	confidenceRecipe   = 0.72
	confidenceFinance  = 0.70
	confidenceDefault  = 0.50
)

var (
	meetingKeywords = []string{
		"meeting", "agenda", "attendees", "action items", "minutes",
		"standup", "sync", "1:1", "retro",
	}
	recipeKeywords = []string{
		"ingredients", "preheat", "recipe", "bake", "simmer", "stir",
		"servings", "tbsp", "tsp",
	}
	financeKeywords = []string{
		"receipt", "total", "subtotal", "invoice", "paid", "expense",
	}
	shoppingKeywords = []string{
		"shopping", "grocery", "groceries", "buy:", "shopping list",
	}
)

// heuristicResult is the outcome of the pattern cascade.
type heuristicResult struct {
	Type       notes.NoteType
	Confidence float64
	Reason     string
}

// runHeuristics applies the pattern detectors in fixed priority order:
// contact, event, todo, meeting, shopping, recipe, finance, then the
// general default. First hit wins.
func runHeuristics(text string) heuristicResult {
	lower := strings.ToLower(text)

	if looksLikeContact(text, lower) {
		return heuristicResult{notes.TypeContact, confidenceContact, "contact field patterns (phone/email)"}
	}
	if looksLikeEvent(text, lower) {
		return heuristicResult{notes.TypeEvent, confidenceEvent, "date/time patterns"}
	}
	if n := textscan.CountItemLines(text); n > 0 {
		// Checkbox or bullet lines. Strong grocery signal reroutes a
		// list to shopping; otherwise it is a todo list.
		if containsAny(lower, shoppingKeywords) || textscan.CountQuantityLines(text) >= 2 {
			return heuristicResult{notes.TypeShopping, confidenceShopping, "item lines with grocery quantities"}
		}
		return heuristicResult{notes.TypeTodo, confidenceTodo, "checkbox/bullet item lines"}
	}
	if containsAny(lower, meetingKeywords) {
		return heuristicResult{notes.TypeMeeting, confidenceMeeting, "meeting keywords"}
	}
	if containsAny(lower, shoppingKeywords) {
		return heuristicResult{notes.TypeShopping, confidenceShopping, "shopping keywords"}
	}
	if containsAny(lower, recipeKeywords) {
		return heuristicResult{notes.TypeRecipe, confidenceRecipe, "recipe keywords"}
	}
	if containsAny(lower, financeKeywords) || len(textscan.AmountPattern.FindAllString(text, 2)) >= 2 {
		return heuristicResult{notes.TypeFinance, confidenceFinance, "amount/receipt patterns"}
	}

	return heuristicResult{notes.TypeGeneral, confidenceDefault, "no pattern matched"}
}

// looksLikeContact checks for phone/email field lines. A single email
// in running prose is not enough; contacts carry a phone or a label.
func looksLikeContact(text, lower string) bool {
	hasEmail := textscan.EmailPattern.MatchString(text)
	hasPhone := textscan.PhonePattern.MatchString(text)
	hasLabel := strings.Contains(lower, "phone:") || strings.Contains(lower, "email:") ||
		strings.Contains(lower, "contact")
	if hasPhone && hasEmail {
		return true
	}
	return (hasPhone || hasEmail) && hasLabel
}

// looksLikeEvent checks for date plus time-of-day signals.
func looksLikeEvent(text, lower string) bool {
	hasDate := dates.ContainsDateToken(text) || strings.Contains(lower, "date:")
	hasTime := textscan.TimePattern.MatchString(text) || strings.Contains(lower, "time:")
	return hasDate && hasTime
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
