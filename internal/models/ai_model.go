package models

// AIModel is one selectable generative model
type AIModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the fixed list of selectable models plus the default selection
type Catalog struct {
	Default string    `json:"default"`
	Models  []AIModel `json:"models"`
}

// Lookup returns the model with the given id
func (c Catalog) Lookup(id string) (AIModel, bool) {
	for _, m := range c.Models {
		if m.ID == id {
			return m, true
		}
	}
	return AIModel{}, false
}

// DisplayName returns the model's human label, or the id when it is not listed
func (c Catalog) DisplayName(id string) string {
	if m, ok := c.Lookup(id); ok {
		return m.Name
	}
	return id
}
