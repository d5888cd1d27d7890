package models

// Domain models persisted as JSON under fixed keys in the key-value store.

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Roles produced by registration. Stored as plain strings.
const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
)

type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Contact     string   `json:"contact"`
	PostedAt    int64    `json:"postedAt"`
}

// ResumeRecord is keyed by the owning user's id; a user has at most one,
// re-uploads overwrite.
type ResumeRecord struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

// Application keeps a denormalized JobTitle so it stays readable even if the
// job is later removed. ApplicantID is empty for anonymous applicants.
type Application struct {
	ID            string `json:"id"`
	JobID         string `json:"jobId"`
	JobTitle      string `json:"jobTitle"`
	ApplicantID   string `json:"applicantId,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Contact       string `json:"contact"`
	ResumeName    string `json:"resumeName,omitempty"`
	ResumeDataURL string `json:"resumeDataUrl,omitempty"`
	AppliedAt     int64  `json:"appliedAt"`
}
