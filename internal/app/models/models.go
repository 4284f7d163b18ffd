package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleMentor  RoleType = "mentor"
	RoleAdmin   RoleType = "admin"
)

// VerificationStatus is the admin-controlled trust flag on a mentor. It
// gates visibility in search and eligibility to receive mentorship requests.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// RequestStatus defines the mentorship request lifecycle state
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)
