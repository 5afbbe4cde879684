package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignReviewTransitions(t *testing.T) {
	assert.True(t, CanTransitionReviewStatus(ReviewStatusPendingReview, ReviewStatusUnderReview))
	assert.True(t, CanTransitionReviewStatus(ReviewStatusUnderReview, ReviewStatusApproved))
	assert.True(t, CanTransitionReviewStatus(ReviewStatusUnderReview, ReviewStatusRejected))
	assert.True(t, CanTransitionReviewStatus(ReviewStatusUnderReview, ReviewStatusNeedsRevision))
	assert.True(t, CanTransitionReviewStatus(ReviewStatusNeedsRevision, ReviewStatusPendingReview))

	// terminal states have no outgoing edges
	assert.False(t, CanTransitionReviewStatus(ReviewStatusApproved, ReviewStatusPendingReview))
	assert.False(t, CanTransitionReviewStatus(ReviewStatusApproved, ReviewStatusUnderReview))
	assert.False(t, CanTransitionReviewStatus(ReviewStatusRejected, ReviewStatusPendingReview))

	// no skipping the queue
	assert.False(t, CanTransitionReviewStatus(ReviewStatusPendingReview, ReviewStatusApproved))
	assert.False(t, CanTransitionReviewStatus(ReviewStatusNeedsRevision, ReviewStatusApproved))
}

func TestCampaignStatusTransitions(t *testing.T) {
	assert.True(t, CanTransitionCampaignStatus(CampaignStatusDraft, CampaignStatusActive))
	assert.True(t, CanTransitionCampaignStatus(CampaignStatusActive, CampaignStatusLive))
	assert.True(t, CanTransitionCampaignStatus(CampaignStatusLive, CampaignStatusCompleted))
	assert.True(t, CanTransitionCampaignStatus(CampaignStatusActive, CampaignStatusCancelled))

	assert.False(t, CanTransitionCampaignStatus(CampaignStatusDraft, CampaignStatusLive))
	assert.False(t, CanTransitionCampaignStatus(CampaignStatusCompleted, CampaignStatusActive))
	assert.False(t, CanTransitionCampaignStatus(CampaignStatusCancelled, CampaignStatusActive))
	assert.False(t, CanTransitionCampaignStatus(CampaignStatusLive, CampaignStatusActive))
}

func TestSubmissionTransitions(t *testing.T) {
	assert.True(t, CanTransitionSubmissionStatus(SubmissionStatusSubmitted, SubmissionStatusApproved))
	assert.True(t, CanTransitionSubmissionStatus(SubmissionStatusSubmitted, SubmissionStatusRevisionRequested))
	assert.True(t, CanTransitionSubmissionStatus(SubmissionStatusSubmitted, SubmissionStatusRejected))
	assert.True(t, CanTransitionSubmissionStatus(SubmissionStatusRevisionRequested, SubmissionStatusSubmitted))

	assert.False(t, CanTransitionSubmissionStatus(SubmissionStatusApproved, SubmissionStatusSubmitted))
	assert.False(t, CanTransitionSubmissionStatus(SubmissionStatusRejected, SubmissionStatusSubmitted))
	assert.False(t, CanTransitionSubmissionStatus(SubmissionStatusRevisionRequested, SubmissionStatusApproved))
}

func TestDealTransitions(t *testing.T) {
	assert.True(t, CanTransitionDealStatus(DealStatusInvited, DealStatusAccepted))
	assert.True(t, CanTransitionDealStatus(DealStatusInvited, DealStatusDeclined))
	assert.True(t, CanTransitionDealStatus(DealStatusAccepted, DealStatusContracted))
	assert.True(t, CanTransitionDealStatus(DealStatusContracted, DealStatusInProgress))
	assert.True(t, CanTransitionDealStatus(DealStatusInProgress, DealStatusSubmitted))
	assert.True(t, CanTransitionDealStatus(DealStatusSubmitted, DealStatusCompleted))
	assert.True(t, CanTransitionDealStatus(DealStatusSubmitted, DealStatusInProgress))

	assert.False(t, CanTransitionDealStatus(DealStatusDeclined, DealStatusAccepted))
	assert.False(t, CanTransitionDealStatus(DealStatusCompleted, DealStatusInProgress))
	assert.False(t, CanTransitionDealStatus(DealStatusInvited, DealStatusCompleted))
}

func TestSubmissionStatusForAction(t *testing.T) {
	status, ok := SubmissionStatusForAction(ReviewActionApprove)
	assert.True(t, ok)
	assert.Equal(t, SubmissionStatusApproved, status)

	status, ok = SubmissionStatusForAction(ReviewActionRequestRevision)
	assert.True(t, ok)
	assert.Equal(t, SubmissionStatusRevisionRequested, status)

	status, ok = SubmissionStatusForAction(ReviewActionReject)
	assert.True(t, ok)
	assert.Equal(t, SubmissionStatusRejected, status)

	_, ok = SubmissionStatusForAction(ReviewAction("promote"))
	assert.False(t, ok)
}

func TestIsTerminalSubmissionStatus(t *testing.T) {
	assert.True(t, IsTerminalSubmissionStatus(SubmissionStatusApproved))
	assert.True(t, IsTerminalSubmissionStatus(SubmissionStatusRejected))
	assert.False(t, IsTerminalSubmissionStatus(SubmissionStatusSubmitted))
	assert.False(t, IsTerminalSubmissionStatus(SubmissionStatusRevisionRequested))
}

func TestReviewStatusForDecision(t *testing.T) {
	status, ok := ReviewStatusForDecision(ReviewDecisionApproved)
	assert.True(t, ok)
	assert.Equal(t, ReviewStatusApproved, status)

	status, ok = ReviewStatusForDecision(ReviewDecisionNeedsReview)
	assert.True(t, ok)
	assert.Equal(t, ReviewStatusNeedsRevision, status)

	_, ok = ReviewStatusForDecision(ReviewDecisionPending)
	assert.False(t, ok)
}
