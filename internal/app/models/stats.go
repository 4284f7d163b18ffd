package models

// DashboardStats aggregates platform-wide counts for the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalStudents     int64 `json:"totalStudents"`
	TotalMentors      int64 `json:"totalMentors"`
	VerifiedMentors   int64 `json:"verifiedMentors"`
	PendingMentors    int64 `json:"pendingMentors"`
	TotalSessions     int64 `json:"totalSessions"`
	CompletedSessions int64 `json:"completedSessions"`
	TotalMessages     int64 `json:"totalMessages"`
	PendingRequests   int64 `json:"pendingRequests"`
}
