package handler

import (
	"stackunderflow/internal/api/dto"
	"testing"
)

func TestAcceptedAnswerID(t *testing.T) {
	answers := []*dto.AnswerDTO{
		{ID: 10, IsAccepted: false},
		{ID: 11, IsAccepted: true},
		{ID: 12, IsAccepted: false},
	}

	got := acceptedAnswerID(answers)
	if got == nil || *got != 11 {
		t.Fatalf("accepted answer id = %v, want 11", got)
	}

	if acceptedAnswerID(answers[:1]) != nil {
		t.Fatal("expected nil when no answer is accepted")
	}
	if acceptedAnswerID(nil) != nil {
		t.Fatal("expected nil for empty list")
	}
}
