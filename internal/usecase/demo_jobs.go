package usecase

import "jobify-backend/internal/domain"

// DemoJobs returns the sample applications used to seed an empty store.
func DemoJobs() []domain.Job {
	return []domain.Job{
		{
			ID:          "1",
			Company:     "Google",
			Position:    "Frontend Developer",
			Location:    "Mountain View, CA",
			JobType:     domain.JobTypeFullTime,
			JobStatus:   domain.JobStatusPending,
			DateApplied: "2025-09-10",
			Salary:      "$120,000 - $150,000",
			Description: "Work on cutting-edge web applications using React and TypeScript.",
		},
		{
			ID:            "2",
			Company:       "Microsoft",
			Position:      "Software Engineer",
			Location:      "Seattle, WA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-05",
			InterviewDate: "2025-09-18",
			Salary:        "$110,000 - $140,000",
			Description:   "Develop cloud-based applications and services.",
		},
		{
			ID:          "3",
			Company:     "Apple",
			Position:    "iOS Developer",
			Location:    "Cupertino, CA",
			JobType:     domain.JobTypeFullTime,
			JobStatus:   domain.JobStatusDeclined,
			DateApplied: "2025-09-02",
			Salary:      "$130,000 - $160,000",
			Description: "Build innovative iOS applications for millions of users.",
		},
		{
			ID:          "4",
			Company:     "Meta",
			Position:    "Full Stack Developer",
			Location:    "Menlo Park, CA",
			JobType:     domain.JobTypeFullTime,
			JobStatus:   domain.JobStatusPending,
			DateApplied: "2025-09-12",
			Salary:      "$125,000 - $155,000",
			Description: "Work on social media platforms and VR applications.",
		},
		{
			ID:            "5",
			Company:       "Netflix",
			Position:      "Backend Developer",
			Location:      "Los Gatos, CA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-08",
			InterviewDate: "2025-09-21",
			Salary:        "$115,000 - $145,000",
			Description:   "Develop scalable streaming infrastructure.",
		},
		{
			ID:          "6",
			Company:     "Amazon",
			Position:    "DevOps Engineer",
			Location:    "Seattle, WA",
			JobType:     domain.JobTypeContract,
			JobStatus:   domain.JobStatusPending,
			DateApplied: "2025-09-14",
			Salary:      "$100,000 - $130,000",
			Description: "Manage cloud infrastructure and deployment pipelines.",
		},
		{
			ID:          "7",
			Company:     "Spotify",
			Position:    "Frontend Developer",
			Location:    "New York, NY",
			JobType:     domain.JobTypeFullTime,
			JobStatus:   domain.JobStatusAccepted,
			DateApplied: "2025-09-01",
			Salary:      "$105,000 - $135,000",
			Description: "Create engaging music streaming experiences.",
		},
		{
			ID:            "8",
			Company:       "Uber",
			Position:      "Mobile Developer",
			Location:      "San Francisco, CA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusDeclined,
			DateApplied:   "2025-09-03",
			InterviewDate: "2025-09-23",
			Salary:        "$110,000 - $140,000",
			Description:   "Develop ride-sharing mobile applications.",
		},
		{
			ID:            "9",
			Company:       "Airbnb",
			Position:      "Product Manager",
			Location:      "San Francisco, CA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-09",
			InterviewDate: "2025-09-24",
			Salary:        "$140,000 - $180,000",
			Description:   "Lead product development for travel experiences.",
		},
		{
			ID:          "10",
			Company:     "Tesla",
			Position:    "Software Engineer",
			Location:    "Austin, TX",
			JobType:     domain.JobTypeFullTime,
			JobStatus:   domain.JobStatusPending,
			DateApplied: "2025-09-13",
			Salary:      "$120,000 - $150,000",
			Description: "Work on autonomous driving software systems.",
		},
		{
			ID:            "11",
			Company:       "Stripe",
			Position:      "Full Stack Developer",
			Location:      "Remote",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-11",
			InterviewDate: "2025-09-26",
			Salary:        "$130,000 - $160,000",
			Description:   "Build payment processing platforms and APIs.",
		},
		{
			ID:          "12",
			Company:     "Slack",
			Position:    "Frontend Engineer",
			Location:    "San Francisco, CA",
			JobType:     domain.JobTypePartTime,
			JobStatus:   domain.JobStatusDeclined,
			DateApplied: "2025-09-06",
			Salary:      "$80,000 - $100,000",
			Description: "Develop communication and collaboration tools.",
		},
		{
			ID:            "13",
			Company:       "Shopify",
			Position:      "React Developer",
			Location:      "Toronto, CA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-14",
			InterviewDate: "2025-09-27",
			Salary:        "$95,000 - $125,000",
			Description:   "Build e-commerce solutions and merchant tools.",
		},
		{
			ID:            "14",
			Company:       "GitHub",
			Position:      "Senior Frontend Developer",
			Location:      "San Francisco, CA",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-12",
			InterviewDate: "2025-09-28",
			Salary:        "$140,000 - $170,000",
			Description:   "Work on developer collaboration platforms.",
		},
		{
			ID:            "15",
			Company:       "Discord",
			Position:      "Full Stack Engineer",
			Location:      "Remote",
			JobType:       domain.JobTypeFullTime,
			JobStatus:     domain.JobStatusInterview,
			DateApplied:   "2025-09-13",
			InterviewDate: "2025-09-29",
			Salary:        "$120,000 - $150,000",
			Description:   "Build communication platforms for gaming communities.",
		},
	}
}
