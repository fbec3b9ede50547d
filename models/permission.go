package models

// PermissionSet enumerates the staff-side capabilities the back office checks.
type PermissionSet struct {
	ManageSchedule bool `bson:"manageSchedule" json:"manageSchedule"`
	ManageBookings bool `bson:"manageBookings" json:"manageBookings"`
	ManageWaitlist bool `bson:"manageWaitlist" json:"manageWaitlist"`
	ViewReports    bool `bson:"viewReports" json:"viewReports"`
}

// CustomRole is a provider-defined named permission set.
type CustomRole struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Permissions PermissionSet `bson:"permissions" json:"permissions"`
}
