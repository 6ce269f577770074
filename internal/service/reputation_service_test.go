package service

import (
	"context"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"
	"testing"
)

func TestDeriveDeltas(t *testing.T) {
	tests := []struct {
		name       string
		transition string
		from       string
		to         string
		want       []int
	}{
		{"create up", VoteCreated, "", VoteDirectionUp, []int{10}},
		{"create down", VoteCreated, "", VoteDirectionDown, []int{-10}},
		{"retract up", VoteRetracted, VoteDirectionUp, "", []int{-10}},
		{"retract down", VoteRetracted, VoteDirectionDown, "", []int{10}},
		{"flip up to down", VoteFlipped, VoteDirectionUp, VoteDirectionDown, []int{-10, -10}},
		{"flip down to up", VoteFlipped, VoteDirectionDown, VoteDirectionUp, []int{10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltas := deriveDeltas(&VoteChangedEvent{
				Transition: tt.transition,
				From:       tt.from,
				To:         tt.to,
			})
			if len(deltas) != len(tt.want) {
				t.Fatalf("delta count = %d, want %d", len(deltas), len(tt.want))
			}
			for i, delta := range deltas {
				if delta.Amount != tt.want[i] {
					t.Fatalf("delta[%d] = %d, want %d", i, delta.Amount, tt.want[i])
				}
			}
		})
	}
}

func TestDeriveDeltasClampOnlyOnDownvoteAdd(t *testing.T) {
	downAdd := deriveDeltas(&VoteChangedEvent{Transition: VoteCreated, To: VoteDirectionDown})
	if !downAdd[0].Clamped {
		t.Fatal("downvote-add delta should be clamped")
	}

	upRetract := deriveDeltas(&VoteChangedEvent{Transition: VoteRetracted, From: VoteDirectionUp})
	if upRetract[0].Clamped {
		t.Fatal("upvote-retract delta must not be clamped")
	}

	flip := deriveDeltas(&VoteChangedEvent{Transition: VoteFlipped, From: VoteDirectionUp, To: VoteDirectionDown})
	if flip[0].Clamped || !flip[1].Clamped {
		t.Fatalf("flip clamp flags = %v/%v, want false/true", flip[0].Clamped, flip[1].Clamped)
	}
}

func TestReactWritesLogsPerDelta(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 7, ReputationPoints: 30})
	logRepo := newFakeReputationLogRepo()
	repos := &repository.TxRepos{Users: userRepo, ReputationLogs: logRepo}

	authorID := uint64(7)
	err := NewReputationService().React(context.Background(), repos, &VoteChangedEvent{
		EventID:      "evt-1",
		PostAuthorID: &authorID,
		Transition:   VoteFlipped,
		From:         VoteDirectionUp,
		To:           VoteDirectionDown,
	})
	if err != nil {
		t.Fatalf("react: %v", err)
	}

	if got := userRepo.users[7].ReputationPoints; got != 10 {
		t.Fatalf("reputation = %d, want 10", got)
	}
	if len(logRepo.logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logRepo.logs))
	}
	for _, entry := range logRepo.logs {
		if entry.EventID != "evt-1" {
			t.Fatalf("log event id = %q, want evt-1", entry.EventID)
		}
	}
}
