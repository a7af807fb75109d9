// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	UserID int `validate:"min=1"`
	TopN   int `validate:"min=1,max=100"`
}

func TestValidateStructPasses(t *testing.T) {
	if verr := ValidateStruct(&sampleRequest{UserID: 1, TopN: 10}); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}
}

func TestValidateStructSingleFailure(t *testing.T) {
	verr := ValidateStruct(&sampleRequest{UserID: 0, TopN: 10})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(verr.Errors()) != 1 {
		t.Fatalf("Errors() has %d entries, want 1", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "UserID" {
		t.Errorf("Details[field] = %v, want UserID", apiErr.Details["field"])
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	verr := ValidateStruct(&sampleRequest{UserID: 0, TopN: 500})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("Errors() has %d entries, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("Details missing fields list: %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "TopN") {
		t.Errorf("Message = %q, want mention of TopN", apiErr.Message)
	}
}

func TestTranslatedMessages(t *testing.T) {
	verr := ValidateStruct(&sampleRequest{UserID: 1, TopN: 500})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if got := verr.Error(); !strings.Contains(got, "at most 100") {
		t.Errorf("Error() = %q, want max translation", got)
	}
}
