package models

// Dashboard describes a Jira dashboard as returned by the REST API.
type Dashboard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
	ViewURL     string `json:"view,omitempty"`
}

// GadgetPosition is the row/column placement of a dashboard gadget.
type GadgetPosition struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Gadget describes a dashboard gadget.
type Gadget struct {
	ID         int                    `json:"id"`
	Title      string                 `json:"title"`
	ModuleKey  string                 `json:"moduleKey"`
	URI        string                 `json:"uri,omitempty"`
	Color      string                 `json:"color"`
	Position   GadgetPosition         `json:"position"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// GadgetConfig is the free-form gadgetConfig property value.
type GadgetConfig map[string]interface{}
