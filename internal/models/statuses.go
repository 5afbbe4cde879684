package models

type UserStatus string
type UserRole string
type CampaignStatus string
type CampaignReviewStatus string
type CampaignType string
type DealStatus string
type SubmissionStatus string
type NotificationStatus string
type ReviewAction string
type ReviewDecision string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCreator UserRole = "creator"
	UserRoleBrand   UserRole = "brand"
	UserRoleAdmin   UserRole = "admin"

	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusLive      CampaignStatus = "live"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"

	ReviewStatusPendingReview CampaignReviewStatus = "pending_review"
	ReviewStatusUnderReview   CampaignReviewStatus = "under_review"
	ReviewStatusApproved      CampaignReviewStatus = "approved"
	ReviewStatusRejected      CampaignReviewStatus = "rejected"
	ReviewStatusNeedsRevision CampaignReviewStatus = "needs_revision"

	CampaignTypeSingle    CampaignType = "single"
	CampaignTypeWeekly    CampaignType = "weekly"
	CampaignTypeMonthly   CampaignType = "monthly"
	CampaignTypeRetainer  CampaignType = "retainer"
	CampaignTypeEvergreen CampaignType = "evergreen"

	DealStatusInvited    DealStatus = "invited"
	DealStatusAccepted   DealStatus = "accepted"
	DealStatusDeclined   DealStatus = "declined"
	DealStatusContracted DealStatus = "contracted"
	DealStatusInProgress DealStatus = "in_progress"
	DealStatusSubmitted  DealStatus = "submitted"
	DealStatusCompleted  DealStatus = "completed"
	DealStatusCancelled  DealStatus = "cancelled"

	SubmissionStatusSubmitted         SubmissionStatus = "submitted"
	SubmissionStatusApproved          SubmissionStatus = "approved"
	SubmissionStatusRevisionRequested SubmissionStatus = "revision_requested"
	SubmissionStatusRejected          SubmissionStatus = "rejected"

	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"

	ReviewActionApprove         ReviewAction = "approve"
	ReviewActionRequestRevision ReviewAction = "request_revision"
	ReviewActionReject          ReviewAction = "reject"

	ReviewDecisionApproved    ReviewDecision = "approved"
	ReviewDecisionRejected    ReviewDecision = "rejected"
	ReviewDecisionNeedsReview ReviewDecision = "needs_review"
	ReviewDecisionPending     ReviewDecision = "pending"
)
