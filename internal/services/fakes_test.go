package services

import (
	"fmt"

	"brandlink_backend/internal/email"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored everywhere, so the
// fakes work with a nil *gorm.DB as long as the code under test never opens a
// real transaction.

type fakeCampaignRepo struct {
	campaigns map[string]*models.Campaign
	briefs    map[string]*models.Brief
	stats     repositories.CampaignStats
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{
		campaigns: make(map[string]*models.Campaign),
		briefs:    make(map[string]*models.Brief),
	}
}

func (f *fakeCampaignRepo) put(campaign *models.Campaign) *models.Campaign {
	if campaign.ID == "" {
		campaign.ID = fmt.Sprintf("campaign-%d", len(f.campaigns)+1)
	}
	f.campaigns[campaign.ID] = campaign
	return campaign
}

func (f *fakeCampaignRepo) CreateCampaign(db *gorm.DB, campaign *models.Campaign) error {
	f.put(campaign)
	return nil
}

func (f *fakeCampaignRepo) FindCampaignByID(db *gorm.DB, id string) (*models.Campaign, error) {
	campaign, ok := f.campaigns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *campaign
	return &copied, nil
}

func (f *fakeCampaignRepo) FindCampaignsByBrand(db *gorm.DB, brandID string) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range f.campaigns {
		if campaign.BrandID == brandID {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) FindCampaignsByReviewStatus(db *gorm.DB, status models.CampaignReviewStatus, limit int) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range f.campaigns {
		if campaign.ReviewStatus == status && len(out) < limit {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) UpdateCampaign(db *gorm.DB, campaign *models.Campaign) error {
	if _, ok := f.campaigns[campaign.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *campaign
	f.campaigns[campaign.ID] = &copied
	return nil
}

func (f *fakeCampaignRepo) DeleteCampaign(db *gorm.DB, id string) error {
	delete(f.campaigns, id)
	return nil
}

func (f *fakeCampaignRepo) TransitionStatus(db *gorm.DB, id string, from, to models.CampaignStatus) (bool, error) {
	campaign, ok := f.campaigns[id]
	if !ok || campaign.Status != from {
		return false, nil
	}
	campaign.Status = to
	return true, nil
}

func (f *fakeCampaignRepo) TransitionReviewStatus(db *gorm.DB, id string, from, to models.CampaignReviewStatus) (bool, error) {
	campaign, ok := f.campaigns[id]
	if !ok || campaign.ReviewStatus != from {
		return false, nil
	}
	campaign.ReviewStatus = to
	return true, nil
}

func (f *fakeCampaignRepo) MarkLaunched(db *gorm.DB, id string) error {
	return nil
}

func (f *fakeCampaignRepo) GetCampaignStats(db *gorm.DB, brandID string) (*repositories.CampaignStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeCampaignRepo) CreateBrief(db *gorm.DB, brief *models.Brief) error {
	if brief.ID == "" {
		brief.ID = fmt.Sprintf("brief-%d", len(f.briefs)+1)
	}
	f.briefs[brief.ID] = brief
	return nil
}

func (f *fakeCampaignRepo) FindBriefByID(db *gorm.DB, id string) (*models.Brief, error) {
	brief, ok := f.briefs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *brief
	return &copied, nil
}

func (f *fakeCampaignRepo) FindBriefsByCampaign(db *gorm.DB, campaignID string) ([]models.Brief, error) {
	var out []models.Brief
	for _, brief := range f.briefs {
		if brief.CampaignID == campaignID {
			out = append(out, *brief)
		}
	}
	return out, nil
}

type fakeSubmissionRepo struct {
	submissions map[string]*models.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[string]*models.Submission)}
}

func (f *fakeSubmissionRepo) put(submission *models.Submission) *models.Submission {
	if submission.ID == "" {
		submission.ID = fmt.Sprintf("submission-%d", len(f.submissions)+1)
	}
	f.submissions[submission.ID] = submission
	return submission
}

func (f *fakeSubmissionRepo) CreateSubmission(db *gorm.DB, submission *models.Submission) error {
	f.put(submission)
	return nil
}

func (f *fakeSubmissionRepo) FindSubmissionByID(db *gorm.DB, id string) (*models.Submission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *submission
	return &copied, nil
}

func (f *fakeSubmissionRepo) FindByCampaign(db *gorm.DB, campaignID string) ([]models.Submission, error) {
	var out []models.Submission
	for _, submission := range f.submissions {
		if submission.CampaignID == campaignID {
			out = append(out, *submission)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) FindByCreatorAndCampaign(db *gorm.DB, creatorID, campaignID string) ([]models.Submission, error) {
	var out []models.Submission
	for _, submission := range f.submissions {
		if submission.CreatorID != creatorID {
			continue
		}
		if campaignID != "" && submission.CampaignID != campaignID {
			continue
		}
		out = append(out, *submission)
	}
	return out, nil
}

func (f *fakeSubmissionRepo) TransitionStatus(db *gorm.DB, id string, from, to models.SubmissionStatus) (bool, error) {
	submission, ok := f.submissions[id]
	if !ok || submission.Status != from {
		return false, nil
	}
	submission.Status = to
	if to == models.SubmissionStatusSubmitted {
		submission.Revisions++
	}
	return true, nil
}

func (f *fakeSubmissionRepo) CountByCampaign(db *gorm.DB, campaignID string) (*repositories.SubmissionCounts, error) {
	counts := &repositories.SubmissionCounts{}
	for _, submission := range f.submissions {
		if submission.CampaignID != campaignID {
			continue
		}
		counts.Total++
		switch submission.Status {
		case models.SubmissionStatusApproved:
			counts.Approved++
		case models.SubmissionStatusRejected:
			counts.Rejected++
		default:
			counts.Pending++
		}
	}
	return counts, nil
}

func (f *fakeSubmissionRepo) FindApprovedCreators(db *gorm.DB, campaignID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, submission := range f.submissions {
		if submission.CampaignID == campaignID && submission.Status == models.SubmissionStatusApproved && !seen[submission.CreatorID] {
			seen[submission.CreatorID] = true
			out = append(out, submission.CreatorID)
		}
	}
	return out, nil
}

type fakeInvitationRepo struct {
	invitations map[string]*models.CreatorInvitation
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*models.CreatorInvitation)}
}

func (f *fakeInvitationRepo) put(invitation *models.CreatorInvitation) *models.CreatorInvitation {
	if invitation.ID == "" {
		invitation.ID = fmt.Sprintf("invitation-%d", len(f.invitations)+1)
	}
	f.invitations[invitation.ID] = invitation
	return invitation
}

func (f *fakeInvitationRepo) CreateInvitation(db *gorm.DB, invitation *models.CreatorInvitation) error {
	for _, existing := range f.invitations {
		if existing.CampaignID == invitation.CampaignID && existing.CreatorID == invitation.CreatorID {
			return repositories.ErrInvitationAlreadyExists
		}
	}
	f.put(invitation)
	return nil
}

func (f *fakeInvitationRepo) FindInvitationByID(db *gorm.DB, id string) (*models.CreatorInvitation, error) {
	invitation, ok := f.invitations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *invitation
	return &copied, nil
}

func (f *fakeInvitationRepo) FindByPair(db *gorm.DB, campaignID, creatorID string) (*models.CreatorInvitation, error) {
	for _, invitation := range f.invitations {
		if invitation.CampaignID == campaignID && invitation.CreatorID == creatorID {
			copied := *invitation
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInvitationRepo) FindByCampaign(db *gorm.DB, campaignID string) ([]models.CreatorInvitation, error) {
	var out []models.CreatorInvitation
	for _, invitation := range f.invitations {
		if invitation.CampaignID == campaignID {
			out = append(out, *invitation)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) FindByCreator(db *gorm.DB, creatorID string) ([]models.CreatorInvitation, error) {
	var out []models.CreatorInvitation
	for _, invitation := range f.invitations {
		if invitation.CreatorID == creatorID {
			out = append(out, *invitation)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) TransitionStatus(db *gorm.DB, id string, from, to models.DealStatus) (bool, error) {
	invitation, ok := f.invitations[id]
	if !ok || invitation.Status != from {
		return false, nil
	}
	invitation.Status = to
	return true, nil
}

func (f *fakeInvitationRepo) SetCounterAmount(db *gorm.DB, id string, amount decimal.Decimal) error {
	invitation, ok := f.invitations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	invitation.CounterAmount = &amount
	return nil
}

func (f *fakeInvitationRepo) IncrementSubmitted(db *gorm.DB, id string) error {
	invitation, ok := f.invitations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	invitation.SubmittedCount++
	return nil
}

func (f *fakeInvitationRepo) IncrementApproved(db *gorm.DB, id string) error {
	invitation, ok := f.invitations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	invitation.ApprovedCount++
	return nil
}

func (f *fakeInvitationRepo) DeleteInvitation(db *gorm.DB, id string) error {
	delete(f.invitations, id)
	return nil
}

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) CreateReview(db *gorm.DB, review *models.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(f.reviews)+1)
	}
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			copied := f.reviews[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) FindReviewsBySubject(db *gorm.DB, subjectType, subjectID string) ([]models.Review, error) {
	var out []models.Review
	for i := range f.reviews {
		if f.reviews[i].SubjectType == subjectType && f.reviews[i].SubjectID == subjectID {
			out = append(out, f.reviews[i])
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindLatestBySubject(db *gorm.DB, subjectType, subjectID string) (*models.Review, error) {
	matches, _ := f.FindReviewsBySubject(db, subjectType, subjectID)
	if len(matches) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &matches[len(matches)-1], nil
}

type fakeNotificationRepo struct {
	rows []models.Notification
}

func (f *fakeNotificationRepo) CreateNotification(db *gorm.DB, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("notification-%d", len(f.rows)+1)
	}
	f.rows = append(f.rows, *notification)
	return nil
}

func (f *fakeNotificationRepo) CreateNotifications(db *gorm.DB, notifications []models.Notification) error {
	for i := range notifications {
		if err := f.CreateNotification(db, &notifications[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNotificationRepo) ClaimDue(db *gorm.DB, limit int) ([]models.Notification, error) {
	var claimed []models.Notification
	for i := range f.rows {
		if len(claimed) >= limit {
			break
		}
		if f.rows[i].Status == models.NotificationStatusPending {
			f.rows[i].Status = models.NotificationStatusProcessing
			f.rows[i].Attempts++
			claimed = append(claimed, f.rows[i])
		}
	}
	return claimed, nil
}

func (f *fakeNotificationRepo) MarkSent(db *gorm.DB, id string) error {
	row := f.byID(id)
	if row == nil {
		return gorm.ErrRecordNotFound
	}
	row.Status = models.NotificationStatusSent
	return nil
}

func (f *fakeNotificationRepo) MarkFailedAttempt(db *gorm.DB, id string, deliveryErr string) error {
	row := f.byID(id)
	if row == nil {
		return gorm.ErrRecordNotFound
	}
	row.LastError = deliveryErr
	if row.Attempts >= 3 {
		row.Status = models.NotificationStatusFailed
	} else {
		row.Status = models.NotificationStatusPending
	}
	return nil
}

func (f *fakeNotificationRepo) FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for i := range f.rows {
		if f.rows[i].UserID != userID {
			continue
		}
		if unreadOnly && f.rows[i].IsRead {
			continue
		}
		out = append(out, f.rows[i])
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeNotificationRepo) MarkAsRead(db *gorm.DB, id, userID string) error {
	row := f.byID(id)
	if row == nil || row.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	row.IsRead = true
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(db *gorm.DB, userID string) error {
	for i := range f.rows {
		if f.rows[i].UserID == userID {
			f.rows[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	for i := range f.rows {
		if f.rows[i].UserID == userID && !f.rows[i].IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) byID(id string) *models.Notification {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i]
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) put(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	f.put(user)
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, emailAddr string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == emailAddr {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(db *gorm.DB, id string) error {
	return nil
}

type fakeEmailProvider struct {
	sent     []*email.Email
	failWith error
}

func (f *fakeEmailProvider) Send(msg *email.Email) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeEmailProvider) Validate() error { return nil }

type fakePublisher struct {
	events   []string
	failWith error
}

func (f *fakePublisher) Publish(eventType string, payload any) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.events = append(f.events, eventType)
	return nil
}

func (f *fakePublisher) Close() error { return nil }
