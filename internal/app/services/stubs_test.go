package services

import (
	"context"
	"strings"
	"testing"
	"time"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// In-memory repository stubs. They reproduce the error contracts of the real
// repositories (sentinel errors, pending-pair uniqueness, defaults) so the
// services under test see the same behavior as with the database-backed ones.

type stubUserRepo struct {
	users    map[int64]*models.User
	students map[int64]*models.Student
	mentors  map[int64]*models.Mentor
	nextID   int64

	// Optional links reproducing the schema's ON DELETE CASCADE chains.
	// Tests that only exercise accounts and profiles leave them nil.
	assessments    *stubAssessmentRepo
	trackers       *stubProgressRepo
	mentorshipReqs *stubMentorshipRepo
	messages       *stubMessageRepo
	sessions       *stubSessionRepo
	resources      *stubResourceRepo
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:    make(map[int64]*models.User),
		students: make(map[int64]*models.Student),
		mentors:  make(map[int64]*models.Mentor),
	}
}

func (r *stubUserRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func cloneStudent(s *models.Student) *models.Student {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func cloneMentor(m *models.Mentor) *models.Mentor {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubUserRepo) CreateWithProfile(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = r.id()
	user.CreatedAt = time.Now()
	r.users[user.ID] = cloneUser(user)

	switch user.Role {
	case models.RoleStudent:
		user.StudentProfile = &models.Student{ID: r.id(), UserID: user.ID}
		r.students[user.StudentProfile.ID] = cloneStudent(user.StudentProfile)
	case models.RoleMentor:
		user.MentorProfile = &models.Mentor{
			ID:                 r.id(),
			UserID:             user.ID,
			VerificationStatus: models.VerificationPending,
		}
		r.mentors[user.MentorProfile.ID] = cloneMentor(user.MentorProfile)
	}
	return nil
}

func (r *stubUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) UpdateContact(_ context.Context, userID int64, name, phoneNumber *string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if phoneNumber != nil {
		user.PhoneNumber = phoneNumber
	}
	return nil
}

func (r *stubUserRepo) UpdateEmail(_ context.Context, userID int64, email string) error {
	for id, user := range r.users {
		if user.Email == email && id != userID {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Email = email
	return nil
}

func (r *stubUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	var studentIDs, mentorIDs []int64
	for sid, student := range r.students {
		if student.UserID == id {
			studentIDs = append(studentIDs, sid)
			delete(r.students, sid)
		}
	}
	for mid, mentor := range r.mentors {
		if mentor.UserID == id {
			mentorIDs = append(mentorIDs, mid)
			delete(r.mentors, mid)
		}
	}
	r.cascadeDelete(studentIDs, mentorIDs)
	return nil
}

// cascadeDelete removes the records hanging off the deleted profiles, the
// way the foreign keys in the schema do.
func (r *stubUserRepo) cascadeDelete(studentIDs, mentorIDs []int64) {
	if r.assessments != nil {
		kept := r.assessments.assessments[:0]
		for _, assessment := range r.assessments.assessments {
			if !containsID(studentIDs, assessment.StudentID) {
				kept = append(kept, assessment)
			}
		}
		r.assessments.assessments = kept
	}
	if r.trackers != nil {
		for id, tracker := range r.trackers.trackers {
			if containsID(studentIDs, tracker.StudentID) {
				delete(r.trackers.trackers, id)
			}
		}
	}
	if r.mentorshipReqs != nil {
		for id, request := range r.mentorshipReqs.requests {
			if containsID(studentIDs, request.StudentID) || containsID(mentorIDs, request.MentorID) {
				delete(r.mentorshipReqs.requests, id)
			}
		}
	}
	if r.messages != nil {
		for id, message := range r.messages.messages {
			if containsID(studentIDs, message.SenderID) || containsID(mentorIDs, message.ReceiverID) {
				delete(r.messages.messages, id)
			}
		}
	}
	if r.sessions != nil {
		for id, session := range r.sessions.sessions {
			if containsID(studentIDs, session.StudentID) || containsID(mentorIDs, session.MentorID) {
				delete(r.sessions.sessions, id)
			}
		}
	}
	if r.resources != nil {
		kept := r.resources.resources[:0]
		for _, resource := range r.resources.resources {
			if !containsID(mentorIDs, resource.MentorID) {
				kept = append(kept, resource)
			}
		}
		r.resources.resources = kept
	}
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) ListUsers(_ context.Context, roleFilter models.RoleType) ([]*models.User, error) {
	var users []*models.User
	for _, user := range r.users {
		if roleFilter != "" && user.Role != roleFilter {
			continue
		}
		users = append(users, cloneUser(user))
	}
	return users, nil
}

func (r *stubUserRepo) CreateStudentProfile(_ context.Context, student *models.Student) error {
	student.ID = r.id()
	r.students[student.ID] = cloneStudent(student)
	return nil
}

func (r *stubUserRepo) CreateMentorProfile(_ context.Context, mentor *models.Mentor) error {
	mentor.ID = r.id()
	if mentor.VerificationStatus == "" {
		mentor.VerificationStatus = models.VerificationPending
	}
	r.mentors[mentor.ID] = cloneMentor(mentor)
	return nil
}

func (r *stubUserRepo) GetStudentByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, student := range r.students {
		if student.UserID == userID {
			return cloneStudent(student), nil
		}
	}
	return nil, apperrors.ErrStudentProfileNotFound
}

func (r *stubUserRepo) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentProfileNotFound
	}
	return cloneStudent(student), nil
}

func (r *stubUserRepo) UpdateStudent(_ context.Context, userID int64, educationalBackground, careerInterests, goals *string) error {
	if educationalBackground == nil && careerInterests == nil && goals == nil {
		return nil
	}
	for _, student := range r.students {
		if student.UserID == userID {
			if educationalBackground != nil {
				student.EducationalBackground = educationalBackground
			}
			if careerInterests != nil {
				student.CareerInterests = careerInterests
			}
			if goals != nil {
				student.Goals = goals
			}
			return nil
		}
	}
	return apperrors.ErrStudentProfileNotFound
}

func (r *stubUserRepo) GetMentorByUserID(_ context.Context, userID int64) (*models.Mentor, error) {
	for _, mentor := range r.mentors {
		if mentor.UserID == userID {
			return cloneMentor(mentor), nil
		}
	}
	return nil, apperrors.ErrMentorProfileNotFound
}

func (r *stubUserRepo) GetMentorByID(_ context.Context, id int64) (*models.Mentor, error) {
	mentor, ok := r.mentors[id]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	clone := cloneMentor(mentor)
	clone.User = cloneUser(r.users[mentor.UserID])
	return clone, nil
}

func (r *stubUserRepo) UpdateMentor(_ context.Context, userID int64, professionalTitle, industry, bio, expertise *string) error {
	for _, mentor := range r.mentors {
		if mentor.UserID == userID {
			if professionalTitle != nil {
				mentor.ProfessionalTitle = professionalTitle
			}
			if industry != nil {
				mentor.Industry = industry
			}
			if bio != nil {
				mentor.Bio = bio
			}
			if expertise != nil {
				mentor.Expertise = expertise
			}
			return nil
		}
	}
	return apperrors.ErrMentorProfileNotFound
}

func (r *stubUserRepo) SearchVerifiedMentors(_ context.Context, industry, expertise string) ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	for _, mentor := range r.mentors {
		if mentor.VerificationStatus != models.VerificationVerified {
			continue
		}
		if industry != "" && !containsFold(mentor.Industry, industry) {
			continue
		}
		if expertise != "" && !containsFold(mentor.Expertise, expertise) {
			continue
		}
		clone := cloneMentor(mentor)
		clone.User = cloneUser(r.users[mentor.UserID])
		mentors = append(mentors, clone)
	}
	return mentors, nil
}

func containsFold(haystack *string, needle string) bool {
	if haystack == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*haystack), strings.ToLower(needle))
}

func (r *stubUserRepo) ListMentorsByStatus(_ context.Context, status models.VerificationStatus) ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	for _, mentor := range r.mentors {
		if mentor.VerificationStatus != status {
			continue
		}
		clone := cloneMentor(mentor)
		clone.User = cloneUser(r.users[mentor.UserID])
		mentors = append(mentors, clone)
	}
	return mentors, nil
}

func (r *stubUserRepo) SetVerificationStatus(_ context.Context, mentorID int64, status models.VerificationStatus) error {
	mentor, ok := r.mentors[mentorID]
	if !ok {
		return apperrors.ErrMentorNotFound
	}
	mentor.VerificationStatus = status
	return nil
}

type stubMentorshipRepo struct {
	requests map[int64]*models.MentorshipRequest
	nextID   int64
}

func newStubMentorshipRepo() *stubMentorshipRepo {
	return &stubMentorshipRepo{requests: make(map[int64]*models.MentorshipRequest)}
}

func cloneRequest(req *models.MentorshipRequest) *models.MentorshipRequest {
	clone := *req
	return &clone
}

func (r *stubMentorshipRepo) CreateRequest(_ context.Context, request *models.MentorshipRequest) error {
	for _, existing := range r.requests {
		if existing.StudentID == request.StudentID &&
			existing.MentorID == request.MentorID &&
			existing.Status == models.RequestPending {
			return apperrors.ErrRequestAlreadyPending
		}
	}
	r.nextID++
	request.ID = r.nextID
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = cloneRequest(request)
	return nil
}

func (r *stubMentorshipRepo) GetRequestByID(_ context.Context, id int64) (*models.MentorshipRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return cloneRequest(request), nil
}

func (r *stubMentorshipRepo) UpdateRequestStatus(_ context.Context, id int64, status models.RequestStatus) error {
	request, ok := r.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func (r *stubMentorshipRepo) ListRequestsByMentor(_ context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	var requests []*models.MentorshipRequest
	for _, request := range r.requests {
		if request.MentorID == mentorID {
			requests = append(requests, cloneRequest(request))
		}
	}
	return requests, nil
}

type stubSessionRepo struct {
	sessions map[int64]*models.Session
	nextID   int64

	// When set, reads attach participant names the way the join query does.
	users *stubUserRepo
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[int64]*models.Session)}
}

func cloneSession(s *models.Session) *models.Session {
	clone := *s
	return &clone
}

func (r *stubSessionRepo) read(session *models.Session) *models.Session {
	clone := cloneSession(session)
	if r.users == nil {
		return clone
	}
	if student, ok := r.users.students[clone.StudentID]; ok {
		if user, ok := r.users.users[student.UserID]; ok {
			clone.StudentName = user.Name
		}
	}
	if mentor, ok := r.users.mentors[clone.MentorID]; ok {
		if user, ok := r.users.users[mentor.UserID]; ok {
			clone.MentorName = user.Name
		}
	}
	return clone
}

func (r *stubSessionRepo) CreateSession(_ context.Context, session *models.Session) error {
	r.nextID++
	session.ID = r.nextID
	if session.Status == "" {
		session.Status = models.SessionPending
	}
	session.CreatedAt = time.Now()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *stubSessionRepo) GetSessionByID(_ context.Context, id int64) (*models.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return r.read(session), nil
}

func (r *stubSessionRepo) UpdateSession(_ context.Context, id int64, status *models.SessionStatus, dateTime *time.Time, notes *string) error {
	session, ok := r.sessions[id]
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	if status != nil {
		session.Status = *status
	}
	if dateTime != nil {
		session.DateTime = *dateTime
	}
	if notes != nil {
		session.Notes = notes
	}
	return nil
}

func (r *stubSessionRepo) ListSessionsByStudent(_ context.Context, studentID int64) ([]*models.Session, error) {
	var sessions []*models.Session
	for _, session := range r.sessions {
		if session.StudentID == studentID {
			sessions = append(sessions, r.read(session))
		}
	}
	return sessions, nil
}

func (r *stubSessionRepo) ListSessionsByMentor(_ context.Context, mentorID int64) ([]*models.Session, error) {
	var sessions []*models.Session
	for _, session := range r.sessions {
		if session.MentorID == mentorID {
			sessions = append(sessions, r.read(session))
		}
	}
	return sessions, nil
}

func (r *stubSessionRepo) ListRecentSessions(_ context.Context, limit uint64) ([]*models.Session, error) {
	var sessions []*models.Session
	for _, session := range r.sessions {
		if uint64(len(sessions)) >= limit {
			break
		}
		sessions = append(sessions, r.read(session))
	}
	return sessions, nil
}

type stubMessageRepo struct {
	messages map[int64]*models.Message
	nextID   int64
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[int64]*models.Message)}
}

func cloneMessage(m *models.Message) *models.Message {
	clone := *m
	return &clone
}

func (r *stubMessageRepo) CreateMessage(_ context.Context, message *models.Message) error {
	r.nextID++
	message.ID = r.nextID
	message.Timestamp = time.Now()
	message.Read = false
	r.messages[message.ID] = cloneMessage(message)
	return nil
}

func (r *stubMessageRepo) GetMessageByID(_ context.Context, id int64) (*models.Message, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, apperrors.ErrMessageNotFound
	}
	return cloneMessage(message), nil
}

func (r *stubMessageRepo) MarkMessageRead(_ context.Context, id int64) error {
	message, ok := r.messages[id]
	if !ok {
		return apperrors.ErrMessageNotFound
	}
	message.Read = true
	return nil
}

func (r *stubMessageRepo) ListMessagesBySender(_ context.Context, studentID int64) ([]*models.Message, error) {
	var messages []*models.Message
	for _, message := range r.messages {
		if message.SenderID == studentID {
			messages = append(messages, cloneMessage(message))
		}
	}
	return messages, nil
}

func (r *stubMessageRepo) ListMessagesByReceiver(_ context.Context, mentorID int64) ([]*models.Message, error) {
	var messages []*models.Message
	for _, message := range r.messages {
		if message.ReceiverID == mentorID {
			messages = append(messages, cloneMessage(message))
		}
	}
	return messages, nil
}

type stubAssessmentRepo struct {
	assessments []*models.CareerAssessment
	nextID      int64
}

func newStubAssessmentRepo() *stubAssessmentRepo {
	return &stubAssessmentRepo{}
}

func (r *stubAssessmentRepo) CreateAssessment(_ context.Context, assessment *models.CareerAssessment) error {
	r.nextID++
	assessment.ID = r.nextID
	assessment.CreatedAt = time.Now()
	clone := *assessment
	r.assessments = append(r.assessments, &clone)
	return nil
}

func (r *stubAssessmentRepo) ListAssessmentsByStudent(_ context.Context, studentID int64) ([]*models.CareerAssessment, error) {
	var assessments []*models.CareerAssessment
	for _, assessment := range r.assessments {
		if assessment.StudentID == studentID {
			clone := *assessment
			assessments = append(assessments, &clone)
		}
	}
	return assessments, nil
}

type stubProgressRepo struct {
	trackers map[int64]*models.ProgressTracker
	nextID   int64
}

func newStubProgressRepo() *stubProgressRepo {
	return &stubProgressRepo{trackers: make(map[int64]*models.ProgressTracker)}
}

func cloneTracker(tr *models.ProgressTracker) *models.ProgressTracker {
	clone := *tr
	return &clone
}

func (r *stubProgressRepo) CreateTracker(_ context.Context, tracker *models.ProgressTracker) error {
	r.nextID++
	tracker.ID = r.nextID
	tracker.CreatedAt = time.Now()
	tracker.UpdatedAt = tracker.CreatedAt
	r.trackers[tracker.ID] = cloneTracker(tracker)
	return nil
}

func (r *stubProgressRepo) GetTrackerByID(_ context.Context, id int64) (*models.ProgressTracker, error) {
	tracker, ok := r.trackers[id]
	if !ok {
		return nil, apperrors.ErrTrackerNotFound
	}
	return cloneTracker(tracker), nil
}

func (r *stubProgressRepo) UpdateTracker(_ context.Context, id int64, goals, milestones *string) error {
	tracker, ok := r.trackers[id]
	if !ok {
		return apperrors.ErrTrackerNotFound
	}
	if goals != nil {
		tracker.Goals = *goals
	}
	if milestones != nil {
		tracker.Milestones = *milestones
	}
	tracker.UpdatedAt = time.Now()
	return nil
}

func (r *stubProgressRepo) ListTrackersByStudent(_ context.Context, studentID int64) ([]*models.ProgressTracker, error) {
	var trackers []*models.ProgressTracker
	for _, tracker := range r.trackers {
		if tracker.StudentID == studentID {
			trackers = append(trackers, cloneTracker(tracker))
		}
	}
	return trackers, nil
}

type stubResourceRepo struct {
	resources []*models.Resource
	nextID    int64
}

func newStubResourceRepo() *stubResourceRepo {
	return &stubResourceRepo{}
}

func (r *stubResourceRepo) CreateResource(_ context.Context, resource *models.Resource) error {
	r.nextID++
	resource.ID = r.nextID
	resource.UploadDate = time.Now()
	clone := *resource
	r.resources = append(r.resources, &clone)
	return nil
}

func (r *stubResourceRepo) ListResourcesByMentor(_ context.Context, mentorID int64) ([]*models.Resource, error) {
	var resources []*models.Resource
	for _, resource := range r.resources {
		if resource.MentorID == mentorID {
			clone := *resource
			resources = append(resources, &clone)
		}
	}
	return resources, nil
}

type stubStatsRepo struct {
	stats models.DashboardStats
}

func (r *stubStatsRepo) GetDashboardStats(_ context.Context) (*models.DashboardStats, error) {
	stats := r.stats
	return &stats, nil
}

type stubMailer struct {
	sentTo []string
}

func (m *stubMailer) SendPasswordResetEmail(toEmail, _ string) error {
	m.sentTo = append(m.sentTo, toEmail)
	return nil
}

// Fixture helpers shared by the service tests.

func seedUser(t *testing.T, repo *stubUserRepo, name, email string, role models.RoleType) *models.User {
	t.Helper()
	user := &models.User{
		UserID: email,
		Name:   name,
		Email:  email,
		Role:   role,
	}
	if err := repo.CreateWithProfile(context.Background(), user); err != nil {
		t.Fatalf("seeding %s failed: %v", email, err)
	}
	return user
}

func seedStudent(t *testing.T, repo *stubUserRepo, name, email string) (*models.User, *models.Student) {
	t.Helper()
	user := seedUser(t, repo, name, email, models.RoleStudent)
	return user, user.StudentProfile
}

func seedMentor(t *testing.T, repo *stubUserRepo, name, email string, status models.VerificationStatus) (*models.User, *models.Mentor) {
	t.Helper()
	user := seedUser(t, repo, name, email, models.RoleMentor)
	if status != models.VerificationPending {
		if err := repo.SetVerificationStatus(context.Background(), user.MentorProfile.ID, status); err != nil {
			t.Fatalf("setting verification status failed: %v", err)
		}
		user.MentorProfile.VerificationStatus = status
	}
	return user, user.MentorProfile
}

func newAuthz(repo *stubUserRepo) *appauth.AuthorizationService {
	return appauth.NewAuthorizationService(repo)
}

func strPtr(s string) *string { return &s }
