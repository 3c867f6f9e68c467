package composer

import (
	"encoding/json"

	"rentify/internal/modules/uploads"
	"rentify/internal/schema"
)

type OpenRequest struct {
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

type SetFieldsRequest struct {
	Fields map[string]any `json:"fields" validate:"required,min=1"`
}

// StateResponse is the full wizard state the client renders from: the draft,
// the position in the flow, and the schema context for the current category
// and type.
type StateResponse struct {
	SessionID     string            `json:"session_id"`
	Step          int               `json:"step"`
	StepLabel     string            `json:"step_label"`
	MissingFields []string          `json:"missing_fields"`
	AllowedTypes  []string          `json:"allowed_types"`
	FieldGroups   map[string]string `json:"field_groups"`
	Draft         PropertyDraft     `json:"draft"`
}

func toStateResponse(sess *Session) StateResponse {
	draft := sess.Draft()
	step := sess.Step()
	category := schema.Category(draft.Category)

	missing := MissingFields(&draft, step)
	if missing == nil {
		missing = []string{}
	}

	policy := schema.GroupPolicy(category, draft.PropertyType)
	groups := make(map[string]string, len(policy))
	for group, req := range policy {
		groups[string(group)] = string(req)
	}

	return StateResponse{
		SessionID:     sess.ID,
		Step:          step,
		StepLabel:     StepLabel(step),
		MissingFields: missing,
		AllowedTypes:  schema.AllowedTypes(category),
		FieldGroups:   groups,
		Draft:         draft,
	}
}

type UploadResult struct {
	File  string `json:"file"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

type UploadResponse struct {
	Results []UploadResult `json:"results"`
	Images  []string       `json:"images"`
}

func toUploadResults(results []uploads.Result) []UploadResult {
	out := make([]UploadResult, 0, len(results))
	for _, r := range results {
		vo := UploadResult{File: r.File, URL: r.URL}
		if r.Err != nil {
			vo.Error = r.Err.Error()
		}
		out = append(out, vo)
	}
	return out
}

type SubmitResponse struct {
	Listing json.RawMessage `json:"listing"`
}
