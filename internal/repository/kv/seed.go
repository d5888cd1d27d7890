package kv

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/garnizeh/jobfinder/pkg/models"
)

// Fixed pools the demo catalog cycles through.
var (
	seedTitles = []string{
		"Software Engineer", "Front-End Developer", "Back-End Developer", "Full Stack Developer", "Web Developer",
		"Mobile App Developer", "UI/UX Designer", "Graphic Designer", "Data Analyst", "Data Scientist",
		"Machine Learning Engineer", "DevOps Engineer", "System Administrator", "Network Engineer",
		"QA Engineer", "Business Analyst", "Product Manager", "Project Manager", "IT Support Engineer",
		"Security Analyst", "Database Administrator", "Cloud Engineer", "Technical Writer", "SEO Specialist",
		"Content Writer", "Digital Marketing Executive", "Sales Executive", "Customer Support Executive",
		"HR Executive", "Finance Analyst", "Automation Engineer",
	}

	seedCompanies = []string{
		"Infosys", "TCS", "Wipro", "HCL", "Tech Mahindra", "Accenture", "IBM", "Capgemini",
		"Cognizant", "LTI", "Oracle", "SAP", "Dell", "Google", "Amazon",
	}

	seedLocations = []string{
		"Pune", "Mumbai", "Bengaluru", "Hyderabad", "Chennai", "Delhi", "Noida", "Gurgaon", "Kolkata", "Nagpur",
	}

	seedSkillPool = []string{
		"JavaScript", "HTML", "CSS", "React", "Node", "Express", "MongoDB", "SQL", "Python", "Java",
		"C++", "AWS", "Docker", "Kubernetes", "Figma", "Photoshop", "Excel", "Tableau", "Pandas", "TensorFlow",
	}
)

const (
	seedJobCount = 60
	// a catalog below this is considered missing and gets reseeded
	minCatalogSize = 50

	dayMillis = int64(24 * 60 * 60 * 1000)
)

// Default demo accounts written on first run.
var seedUsers = []models.User{
	{ID: "u_mahesh", Name: "Mahesh Nagapure", Email: "mahesh@example.com", Password: "password", Role: models.RoleSeeker},
	{ID: "u_emp", Name: "Employer One", Email: "emp@example.com", Password: "password", Role: models.RoleEmployer},
}

// EnsureUsersAndResumes writes the default accounts when the users collection
// is absent and guarantees a résumé map exists. Safe to call on every start.
func (r *KVRepo) EnsureUsersAndResumes(ctx context.Context) error {
	var users []models.User
	ok, err := r.store.Get(ctx, keyUsers, &users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if !ok {
		defaults := make([]models.User, len(seedUsers))
		copy(defaults, seedUsers)
		if err := r.store.Put(ctx, keyUsers, defaults); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	resumes := make(map[string]models.ResumeRecord)
	ok, err = r.store.Get(ctx, keyResumes, &resumes)
	if err != nil {
		return fmt.Errorf("seed resumes: %w", err)
	}
	if !ok {
		if err := r.store.Put(ctx, keyResumes, resumes); err != nil {
			return fmt.Errorf("seed resumes: %w", err)
		}
	}

	return nil
}

// EnsureJobs reseeds the catalog with exactly 60 synthetic jobs when fewer
// than 50 are present, newest first, and reports whether it did. It is a
// no-op on an already-sufficient catalog, so the stored sequence is left
// untouched across restarts. Clearing application history is deliberately
// left to the caller.
func (r *KVRepo) EnsureJobs(ctx context.Context) (bool, error) {
	var jobs []models.Job
	ok, err := r.store.Get(ctx, keyJobs, &jobs)
	if err != nil {
		return false, fmt.Errorf("seed jobs: %w", err)
	}
	if ok && len(jobs) >= minCatalogSize {
		return false, nil
	}

	seededAt := now()
	jobs = make([]models.Job, 0, seedJobCount)
	for i := 0; i < seedJobCount; i++ {
		title := seedTitles[i%len(seedTitles)]
		if i%7 == 0 {
			title += " (Internship)"
		}
		company := seedCompanies[i%len(seedCompanies)]
		skills := seedSkills(i)

		jobs = append(jobs, models.Job{
			ID:          NewID(),
			Title:       title,
			Company:     company,
			Location:    seedLocations[i%len(seedLocations)],
			Skills:      skills,
			Salary:      fmt.Sprintf("%d LPA", 2+(i%8)),
			Description: fmt.Sprintf("We are hiring for %s at %s. Candidate should be proficient in %s. Freshers and experienced can apply.", title, company, strings.Join(skills, ", ")),
			Contact:     seedContact(),
			PostedAt:    seededAt - int64(i)*dayMillis,
		})
	}

	if err := r.store.Put(ctx, keyJobs, jobs); err != nil {
		return false, fmt.Errorf("seed jobs: %w", err)
	}

	return true, nil
}

// seedSkills picks 2+(i mod 4) consecutive pool entries starting at offset i,
// wrapping, then dedupes. Dedup may shrink the nominal count; that is fine.
func seedSkills(i int) []string {
	cnt := 2 + (i % 4)
	skills := make([]string, 0, cnt)
	for j := 0; j < cnt; j++ {
		skills = append(skills, seedSkillPool[(i+j)%len(seedSkillPool)])
	}

	return dedupe(skills)
}

// seedContact synthesizes a 10-digit phone-like string starting with 9.
func seedContact() string {
	return fmt.Sprintf("9%d", 600000000+rand.IntN(400000000))
}
