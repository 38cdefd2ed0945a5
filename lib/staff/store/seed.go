package staffstore

import "staff-portal-backend/models"

// SeedUsers is the built-in staff directory used when no external identity
// source is configured.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:         "u1",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane.doe@staffportal.example",
			Role:       models.UserRoleStaff,
			Department: "Engineering",
			Rank:       "Officer II",
		},
		{
			ID:         "u2",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "john.smith@staffportal.example",
			Role:       models.UserRoleHR,
			Department: "Human Resources",
			Rank:       "Senior Officer",
		},
		{
			ID:         "u3",
			FirstName:  "Mary",
			LastName:   "Johnson",
			Email:      "mary.johnson@staffportal.example",
			Role:       models.UserRoleAdmin,
			Department: "Administration",
			Rank:       "Director",
		},
		{
			ID:         "u4",
			FirstName:  "Peter",
			LastName:   "Okafor",
			Email:      "peter.okafor@staffportal.example",
			Role:       models.UserRoleStaff,
			Department: "Finance",
			Rank:       "Officer I",
		},
	}
}
