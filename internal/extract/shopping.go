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

const shoppingSystemPrompt = `You extract a shopping list from handwritten note text.

Respond ONLY with a JSON object of this exact shape:
{"storeName": "", "items": [{"name": "...", "quantity": "", "category": "", "isChecked": false}], "notes": ""}

Rules:
- One entry per item line.
- quantity is the raw leading amount ("2", "1 gallon"), empty if absent.
- category is one of: produce, dairy, meat, bakery, pantry, frozen, household, other.
- isChecked is true only for items marked done.`

// shoppingJSON is the wire shape expected from the LLM.
type shoppingJSON struct {
	StoreName string `json:"storeName"`
	Items     []struct {
		Name      string `json:"name"`
		Quantity  string `json:"quantity"`
		Category  string `json:"category"`
		IsChecked bool   `json:"isChecked"`
	} `json:"items"`
	Notes string `json:"notes"`
}

// Shopping extracts a shopping list from text. LLM first, heuristics
// on any failure; never returns an error.
func (e *Engine) Shopping(ctx context.Context, text string) notes.ShoppingList {
	var result notes.ShoppingList
	if e.useLLM() {
		v, err := e.shoppingLLM(ctx, text)
		result = orElse(e, "shopping", v, err, func() notes.ShoppingList {
			return HeuristicShopping(text)
		})
	} else {
		result = HeuristicShopping(text)
	}
	for i := range result.Items {
		if result.Items[i].ID == "" {
			result.Items[i].ID = notes.NewID()
		}
	}
	return result
}

func (e *Engine) shoppingLLM(ctx context.Context, text string) (notes.ShoppingList, error) {
	raw, err := e.complete(ctx, shoppingSystemPrompt, text)
	if err != nil {
		return notes.ShoppingList{}, err
	}
	var wire shoppingJSON
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &wire); err != nil {
		return notes.ShoppingList{}, fmt.Errorf("undecodable shopping response: %w", err)
	}
	list := notes.ShoppingList{
		StoreName: strings.TrimSpace(wire.StoreName),
		Notes:     strings.TrimSpace(wire.Notes),
	}
	for _, it := range wire.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		category := it.Category
		if category == "" {
			category = textscan.CategorizeItem(name)
		}
		list.Items = append(list.Items, notes.ShoppingItem{
			Name:      name,
			Quantity:  strings.TrimSpace(it.Quantity),
			Category:  category,
			IsChecked: it.IsChecked,
		})
	}
	return list, nil
}

// HeuristicShopping extracts a shopping list by line scanning. Every
// checkbox/bullet/numbered line becomes one item; leading quantity
// tokens are split off via the unit-keyword list and categories come
// from the keyword tables.
func HeuristicShopping(text string) notes.ShoppingList {
	var list notes.ShoppingList
	for _, line := range strings.Split(text, "\n") {
		if v, ok := textscan.FieldValue(line, "store"); ok && list.StoreName == "" {
			list.StoreName = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "notes"); ok && list.Notes == "" {
			list.Notes = v
			continue
		}
		item, ok := textscan.ParseItemLine(line)
		if !ok || item.Text == "" {
			continue
		}
		quantity, name := textscan.SplitQuantity(item.Text)
		list.Items = append(list.Items, notes.ShoppingItem{
			Name:      name,
			Quantity:  quantity,
			Category:  textscan.CategorizeItem(name),
			IsChecked: item.IsChecked,
		})
	}
	return list
}
