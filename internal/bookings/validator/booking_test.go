package validator

import (
	"errors"
	"strings"
	"testing"

	"classbook/pkg/logger"
	"classbook/pkg/model"
)

func TestValidateRequest(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		name       string
		req        model.BookingRequest
		wantTags   []string
		wantFields []string
	}{
		{
			name: "valid",
			req:  model.BookingRequest{ClassID: "yoga", ClientName: "Jane", ClientEmail: "jane@example.com"},
		},
		{
			name:       "all missing",
			req:        model.BookingRequest{},
			wantTags:   []string{TagRequired},
			wantFields: []string{"class_id", "client_name", "client_email"},
		},
		{
			name:       "bad email",
			req:        model.BookingRequest{ClassID: "yoga", ClientName: "Jane", ClientEmail: "not-an-email"},
			wantTags:   []string{TagEmail},
			wantFields: []string{"client_email"},
		},
		{
			name:       "name too long",
			req:        model.BookingRequest{ClassID: "yoga", ClientName: strings.Repeat("a", 201), ClientEmail: "jane@example.com"},
			wantTags:   []string{"max"},
			wantFields: []string{"client_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRequest(&tt.req)
			if len(tt.wantTags) == 0 {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T %v", err, err)
			}
			for _, tag := range tt.wantTags {
				if !verrs.HasTag(tag) {
					t.Errorf("expected tag %q in %v", tag, verrs)
				}
			}
			fields := verrs.Fields()
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("expected field %q in %v", f, fields)
				}
			}
		})
	}
}

func TestValidateRequest_TranslatedMessages(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	err := v.ValidateRequest(&model.BookingRequest{ClassID: "yoga", ClientName: "Jane"})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 1 {
		t.Fatalf("expected one validation error, got %v", err)
	}
	if verrs[0].Message != "client_email is a required field" {
		t.Errorf("unexpected message %q", verrs[0].Message)
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		email   string
		wantTag string
	}{
		{"jane@example.com", ""},
		{"Jane.Doe+yoga@sub.example.co.in", ""},
		{"", TagRequired},
		{"jane", TagEmail},
		{"jane@", TagEmail},
		{"@example.com", TagEmail},
		{" jane@example.com", TagEmail},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.wantTag == "" {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) || !verrs.HasTag(tt.wantTag) {
				t.Errorf("expected tag %q, got %v", tt.wantTag, err)
			}
			if verrs[0].Field != "email" {
				t.Errorf("expected field email, got %q", verrs[0].Field)
			}
		})
	}
}

func TestValidateEmail_MessageNamesField(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	var verrs ValidationErrors
	if !errors.As(v.ValidateEmail("jane"), &verrs) {
		t.Fatal("expected validation errors")
	}
	if verrs[0].Message != "email must be a valid email address" {
		t.Errorf("unexpected message %q", verrs[0].Message)
	}
}
