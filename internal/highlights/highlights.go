// Package highlights makes the AI-generated support payloads safe to render.
// The backend's highlight and readiness responses are loosely shaped: detail
// fields arrive as strings, numbers, arrays or nested objects, and readiness
// arrives as either a bare percentage or a requirements object. Everything
// here coerces those shapes into displayable values while keeping the raw
// JSON around for callers that need it.
package highlights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Detail is a display-safe rendering of a heterogeneous field, paired with
// the raw JSON it was coerced from.
type Detail struct {
	Text string
	Raw  json.RawMessage
}

// Empty reports whether there was no value at all.
func (d Detail) Empty() bool {
	return len(bytes.TrimSpace(d.Raw)) == 0 || bytes.Equal(bytes.TrimSpace(d.Raw), []byte("null"))
}

// CoerceDetail flattens a raw JSON value into display-safe text.
// Strings and numbers pass through; objects prefer a "summary" or
// "description" field; everything else falls back to its compact JSON text.
func CoerceDetail(raw json.RawMessage) Detail {
	d := Detail{Raw: raw}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return d
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			d.Text = s
			return d
		}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			for _, key := range []string{"summary", "description"} {
				var s string
				if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
					d.Text = s
					return d
				}
			}
		}
	case 't', 'f':
		d.Text = string(trimmed)
		return d
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err == nil {
			d.Text = strconv.FormatFloat(n, 'f', -1, 64)
			return d
		}
	}

	// Arrays and summary-less objects render as their compact JSON.
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err == nil {
		d.Text = compact.String()
	} else {
		d.Text = string(trimmed)
	}
	return d
}

// Moment is one AI-surfaced career moment.
type Moment struct {
	Title  string
	Detail Detail
}

// TalkingPoint is one suggested interview talking point. The backend sends
// either a bare string or an object with text and context.
type TalkingPoint struct {
	Text    Detail
	Context Detail
}

// Highlights is the sanitized view of the support highlights payload.
type Highlights struct {
	Moments       []Moment
	TalkingPoints []TalkingPoint
	Momentum      Detail
}

// Sanitize decodes and coerces a highlights payload. Absent or non-object
// payloads yield an empty Highlights rather than an error; the page renders
// an empty state in that case.
func Sanitize(payload []byte) Highlights {
	var out Highlights

	var envelope struct {
		Moments       []json.RawMessage `json:"moments"`
		TalkingPoints []json.RawMessage `json:"talkingPoints"`
		Momentum      json.RawMessage   `json:"momentum"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return out
	}

	for _, raw := range envelope.Moments {
		var m struct {
			Title  string          `json:"title"`
			Detail json.RawMessage `json:"detail"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			continue
		}
		out.Moments = append(out.Moments, Moment{
			Title:  m.Title,
			Detail: CoerceDetail(m.Detail),
		})
	}

	for _, raw := range envelope.TalkingPoints {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		if trimmed[0] == '{' {
			var p struct {
				Text    json.RawMessage `json:"text"`
				Context json.RawMessage `json:"context"`
			}
			if err := json.Unmarshal(trimmed, &p); err != nil {
				continue
			}
			text := p.Text
			if len(bytes.TrimSpace(text)) == 0 {
				// Objects without a text field coerce wholesale, as the
				// original client did with point.text ?? point.
				text = trimmed
			}
			out.TalkingPoints = append(out.TalkingPoints, TalkingPoint{
				Text:    CoerceDetail(text),
				Context: CoerceDetail(p.Context),
			})
			continue
		}
		out.TalkingPoints = append(out.TalkingPoints, TalkingPoint{Text: CoerceDetail(trimmed)})
	}

	out.Momentum = CoerceDetail(envelope.Momentum)
	return out
}

// Requirement is one readiness requirement or missing item.
type Requirement struct {
	ID    string
	Label string
}

// Readiness is the interpreted portfolio-readiness state.
type Readiness struct {
	Percent      int
	Ready        bool
	Missing      []Requirement
	Requirements []Requirement
	Summary      string
}

// InterpretReadiness accepts the backend's readiness payload in any of its
// observed forms: a bare number, or an object carrying some combination of
// percent/score/value, requirements, missing, ready and summary fields.
func InterpretReadiness(payload []byte) Readiness {
	trimmed := bytes.TrimSpace(payload)

	var percent float64
	if err := json.Unmarshal(trimmed, &percent); err == nil {
		return Readiness{
			Percent: int(percent),
			Ready:   percent >= 100,
		}
	}

	var envelope struct {
		Percent      *float64          `json:"percent"`
		Score        *float64          `json:"score"`
		Value        *float64          `json:"value"`
		Ready        bool              `json:"ready"`
		Summary      string            `json:"summary"`
		Description  string            `json:"description"`
		Requirements []json.RawMessage `json:"requirements"`
		Missing      []json.RawMessage `json:"missing"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Readiness{}
	}

	out := Readiness{
		Requirements: describeItems(envelope.Requirements),
		Missing:      describeItems(envelope.Missing),
		Summary:      envelope.Summary,
	}
	if out.Summary == "" {
		out.Summary = envelope.Description
	}

	switch {
	case envelope.Percent != nil:
		out.Percent = int(*envelope.Percent)
	case envelope.Score != nil:
		out.Percent = int(*envelope.Score)
	case envelope.Value != nil:
		out.Percent = int(*envelope.Value)
	case len(out.Requirements) > 0:
		completed := len(out.Requirements) - len(out.Missing)
		out.Percent = int(float64(completed)/float64(len(out.Requirements))*100 + 0.5)
	case envelope.Ready:
		out.Percent = 100
	}

	out.Ready = envelope.Ready || out.Percent >= 100
	return out
}

// describeItems flattens requirement entries, which may be strings or
// objects with key/id and label/description fields.
func describeItems(raws []json.RawMessage) []Requirement {
	var out []Requirement
	for i, raw := range raws {
		var item struct {
			Key         string `json:"key"`
			ID          string `json:"id"`
			Label       string `json:"label"`
			Description string `json:"description"`
		}
		req := Requirement{}
		if err := json.Unmarshal(raw, &item); err == nil {
			req.ID = item.Key
			if req.ID == "" {
				req.ID = item.ID
			}
			req.Label = item.Label
			if req.Label == "" {
				req.Label = item.Description
			}
		}
		if req.ID == "" {
			req.ID = strconv.Itoa(i)
		}
		if req.Label == "" {
			req.Label = fallbackLabel(raw)
		}
		out = append(out, req)
	}
	return out
}

func fallbackLabel(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return fmt.Sprintf("%s", bytes.TrimSpace(raw))
}
