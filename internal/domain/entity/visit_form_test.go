package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestFormAnswerValidate(t *testing.T) {
	tests := []struct {
		name    string
		answer  FormAnswer
		wantErr bool
	}{
		{name: "text", answer: FormAnswer{FieldID: "f1", Type: FormFieldText, Text: ptr("ok")}},
		{name: "number", answer: FormAnswer{FieldID: "f2", Type: FormFieldNumber, Number: ptr(3.5)}},
		{name: "select", answer: FormAnswer{FieldID: "f3", Type: FormFieldSelect, Options: []string{"a"}}},
		{name: "checkbox", answer: FormAnswer{FieldID: "f4", Type: FormFieldCheckbox, Checked: ptr(false)}},
		{name: "signature", answer: FormAnswer{FieldID: "f5", Type: FormFieldSignature, FileRef: ptr("s3://sig")}},
		{name: "location", answer: FormAnswer{FieldID: "f6", Type: FormFieldLocation, Location: &FormLocation{Latitude: 1, Longitude: 2}}},
		{name: "missing field id", answer: FormAnswer{Type: FormFieldText, Text: ptr("x")}, wantErr: true},
		{name: "payload mismatch", answer: FormAnswer{FieldID: "f", Type: FormFieldNumber, Text: ptr("1")}, wantErr: true},
		{name: "two payloads", answer: FormAnswer{FieldID: "f", Type: FormFieldText, Text: ptr("1"), Number: ptr(1.0)}, wantErr: true},
		{name: "NaN number", answer: FormAnswer{FieldID: "f", Type: FormFieldNumber, Number: ptr(math.NaN())}, wantErr: true},
		{name: "empty file ref", answer: FormAnswer{FieldID: "f", Type: FormFieldImage, FileRef: ptr("")}, wantErr: true},
		{name: "bad location", answer: FormAnswer{FieldID: "f", Type: FormFieldLocation, Location: &FormLocation{Latitude: 91}}, wantErr: true},
		{name: "unknown type", answer: FormAnswer{FieldID: "f", Type: "video", FileRef: ptr("x")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.answer.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFormAnswers_DuplicateField(t *testing.T) {
	answers := []FormAnswer{
		{FieldID: "f1", Type: FormFieldText, Text: ptr("a")},
		{FieldID: "f1", Type: FormFieldText, Text: ptr("b")},
	}

	assert.Error(t, ValidateFormAnswers(answers))
	assert.NoError(t, ValidateFormAnswers(answers[:1]))
}
