package models

// Status graphs for campaigns, submissions and deals. Every status write in the
// service layer goes through these tables; an edge that is not listed here is
// rejected with a conflict before anything touches the database.

var campaignReviewEdges = map[CampaignReviewStatus][]CampaignReviewStatus{
	ReviewStatusPendingReview: {ReviewStatusUnderReview},
	ReviewStatusUnderReview:   {ReviewStatusApproved, ReviewStatusRejected, ReviewStatusNeedsRevision},
	ReviewStatusNeedsRevision: {ReviewStatusPendingReview},
	// approved and rejected are terminal
}

var campaignStatusEdges = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:  {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusActive: {CampaignStatusLive, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusLive:   {CampaignStatusCompleted, CampaignStatusCancelled},
}

var submissionEdges = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusSubmitted:         {SubmissionStatusApproved, SubmissionStatusRevisionRequested, SubmissionStatusRejected},
	SubmissionStatusRevisionRequested: {SubmissionStatusSubmitted},
	// approved and rejected are terminal
}

var dealEdges = map[DealStatus][]DealStatus{
	DealStatusInvited:    {DealStatusAccepted, DealStatusDeclined, DealStatusCancelled},
	DealStatusAccepted:   {DealStatusContracted, DealStatusCancelled},
	DealStatusContracted: {DealStatusInProgress, DealStatusCancelled},
	DealStatusInProgress: {DealStatusSubmitted, DealStatusCancelled},
	DealStatusSubmitted:  {DealStatusInProgress, DealStatusCompleted, DealStatusCancelled},
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func CanTransitionReviewStatus(from, to CampaignReviewStatus) bool {
	return contains(campaignReviewEdges[from], to)
}

func CanTransitionCampaignStatus(from, to CampaignStatus) bool {
	return contains(campaignStatusEdges[from], to)
}

func CanTransitionSubmissionStatus(from, to SubmissionStatus) bool {
	return contains(submissionEdges[from], to)
}

func CanTransitionDealStatus(from, to DealStatus) bool {
	return contains(dealEdges[from], to)
}

// SubmissionStatusForAction maps a reviewer action to the submission status it
// produces. Unknown actions return false.
func SubmissionStatusForAction(action ReviewAction) (SubmissionStatus, bool) {
	switch action {
	case ReviewActionApprove:
		return SubmissionStatusApproved, true
	case ReviewActionRequestRevision:
		return SubmissionStatusRevisionRequested, true
	case ReviewActionReject:
		return SubmissionStatusRejected, true
	}
	return "", false
}

// ReviewStatusForDecision maps an admin campaign decision to the review status
// it produces.
func ReviewStatusForDecision(decision ReviewDecision) (CampaignReviewStatus, bool) {
	switch decision {
	case ReviewDecisionApproved:
		return ReviewStatusApproved, true
	case ReviewDecisionRejected:
		return ReviewStatusRejected, true
	case ReviewDecisionNeedsReview:
		return ReviewStatusNeedsRevision, true
	}
	return "", false
}

// IsTerminalSubmissionStatus reports whether no further review action is
// allowed for a submission in this status.
func IsTerminalSubmissionStatus(status SubmissionStatus) bool {
	return status == SubmissionStatusApproved || status == SubmissionStatusRejected
}
