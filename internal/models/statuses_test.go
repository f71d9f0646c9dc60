package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, CanTransition(JobStatusOpen, JobStatusAssigned))
	assert.True(t, CanTransition(JobStatusOpen, JobStatusCancelled))
	assert.True(t, CanTransition(JobStatusAssigned, JobStatusEscrowFunded))
	assert.True(t, CanTransition(JobStatusAssigned, JobStatusInProgress))
	assert.True(t, CanTransition(JobStatusEscrowFunded, JobStatusCompleted))
	assert.True(t, CanTransition(JobStatusEscrowFunded, JobStatusInProgress))
	assert.True(t, CanTransition(JobStatusInProgress, JobStatusCompleted))

	assert.False(t, CanTransition(JobStatusOpen, JobStatusCompleted))
	assert.False(t, CanTransition(JobStatusOpen, JobStatusInProgress))
	assert.False(t, CanTransition(JobStatusCompleted, JobStatusOpen))
	assert.False(t, CanTransition(JobStatusCancelled, JobStatusAssigned))
}

func TestCancelReachableFromEveryNonTerminalState(t *testing.T) {
	t.Parallel()

	for _, from := range []JobStatus{JobStatusOpen, JobStatusAssigned, JobStatusEscrowFunded, JobStatusInProgress} {
		assert.True(t, CanTransition(from, JobStatusCancelled), "cancel from %s", from)
	}
	assert.False(t, CanTransition(JobStatusCompleted, JobStatusCancelled))
	assert.False(t, CanTransition(JobStatusCancelled, JobStatusCancelled))
}

func TestTerminalStatuses(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminalJobStatus(JobStatusCompleted))
	assert.True(t, IsTerminalJobStatus(JobStatusCancelled))
	assert.False(t, IsTerminalJobStatus(JobStatusOpen))
	assert.False(t, IsTerminalJobStatus(JobStatusEscrowFunded))
}

func TestVerificationTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, CanTransitionVerification(VerificationIncomplete, VerificationPending))
	assert.True(t, CanTransitionVerification(VerificationPending, VerificationApproved))
	assert.True(t, CanTransitionVerification(VerificationPending, VerificationRejected))
	assert.True(t, CanTransitionVerification(VerificationPending, VerificationIncomplete))
	assert.True(t, CanTransitionVerification(VerificationApproved, VerificationIncomplete))
	assert.True(t, CanTransitionVerification(VerificationRejected, VerificationIncomplete))

	assert.False(t, CanTransitionVerification(VerificationIncomplete, VerificationApproved))
	assert.False(t, CanTransitionVerification(VerificationIncomplete, VerificationRejected))
	assert.False(t, CanTransitionVerification(VerificationApproved, VerificationPending))
	assert.False(t, CanTransitionVerification(VerificationRejected, VerificationApproved))
}

func TestJobCategories(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidJobCategory("plumbing"))
	assert.True(t, IsValidJobCategory("other"))
	assert.False(t, IsValidJobCategory("underwater-basket-weaving"))
	assert.False(t, IsValidJobCategory(""))
}
