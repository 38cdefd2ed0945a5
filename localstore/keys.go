package localstore

// Persisted record keys, mirroring the browser local-storage layout.
const (
	KeySession       = "session"
	KeyNotifications = "notifications"
	KeyDocuments     = "documents"
	KeyPolicies      = "policies"
	KeyApprovals     = "approvals"
	KeyComplaints    = "complaints"
)

func KeyDirectoryFilters(userID string) string {
	return "prefs:filters:" + userID
}

func KeyTheme(userID string) string {
	return "prefs:theme:" + userID
}
