package entity

import (
	"math"

	"fieldtrack/internal/errors"
)

// FormFieldType discriminates the payload carried by a FormAnswer.
type FormFieldType string

const (
	FormFieldText      FormFieldType = "text"
	FormFieldNumber    FormFieldType = "number"
	FormFieldSelect    FormFieldType = "select"
	FormFieldCheckbox  FormFieldType = "checkbox"
	FormFieldImage     FormFieldType = "image"
	FormFieldPDF       FormFieldType = "pdf"
	FormFieldLocation  FormFieldType = "location"
	FormFieldSignature FormFieldType = "signature"
)

// FormLocation is the payload of a location field.
type FormLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FormAnswer is one answered field of a visit form.
// Exactly one payload member is set and it must match Type.
type FormAnswer struct {
	FieldID  string        `json:"field_id"`
	Type     FormFieldType `json:"type"`
	Text     *string       `json:"text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Options  []string      `json:"options,omitempty"` // select
	Checked  *bool         `json:"checked,omitempty"` // checkbox
	FileRef  *string       `json:"file_ref,omitempty"` // image, pdf and signature uploads live in object storage
	Location *FormLocation `json:"location,omitempty"`
}

func (a *FormAnswer) payloadCount() int {
	n := 0
	if a.Text != nil {
		n++
	}
	if a.Number != nil {
		n++
	}
	if a.Options != nil {
		n++
	}
	if a.Checked != nil {
		n++
	}
	if a.FileRef != nil {
		n++
	}
	if a.Location != nil {
		n++
	}

	return n
}

// Validate checks the answer carries the payload its type requires and nothing else.
func (a *FormAnswer) Validate() error {
	if a.FieldID == "" {
		return errors.New("field_id is required")
	}
	if a.payloadCount() != 1 {
		return errors.Errorf("field %s: exactly one value is required", a.FieldID)
	}

	switch a.Type {
	case FormFieldText:
		if a.Text == nil {
			return errors.Errorf("field %s: text value expected", a.FieldID)
		}
	case FormFieldNumber:
		if a.Number == nil || math.IsNaN(*a.Number) || math.IsInf(*a.Number, 0) {
			return errors.Errorf("field %s: finite number expected", a.FieldID)
		}
	case FormFieldSelect:
		if len(a.Options) == 0 {
			return errors.Errorf("field %s: at least one option expected", a.FieldID)
		}
	case FormFieldCheckbox:
		if a.Checked == nil {
			return errors.Errorf("field %s: checked value expected", a.FieldID)
		}
	case FormFieldImage, FormFieldPDF, FormFieldSignature:
		if a.FileRef == nil || *a.FileRef == "" {
			return errors.Errorf("field %s: file reference expected", a.FieldID)
		}
	case FormFieldLocation:
		if a.Location == nil || !ValidCoordinate(a.Location.Latitude, a.Location.Longitude) {
			return errors.Errorf("field %s: valid coordinate expected", a.FieldID)
		}
	default:
		return errors.Errorf("field %s: unknown type %q", a.FieldID, a.Type)
	}

	return nil
}

// ValidateFormAnswers validates every answer and rejects repeated field ids.
func ValidateFormAnswers(answers []FormAnswer) error {
	seen := make(map[string]struct{}, len(answers))
	for i := range answers {
		if err := answers[i].Validate(); err != nil {
			return err
		}
		if _, ok := seen[answers[i].FieldID]; ok {
			return errors.Errorf("field %s answered twice", answers[i].FieldID)
		}
		seen[answers[i].FieldID] = struct{}{}
	}

	return nil
}
