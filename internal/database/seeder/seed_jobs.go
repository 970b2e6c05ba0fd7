package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/repository"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "seq", "title", "company", "location", "description", "skills", "job_type", "salary", "created_at"); err != nil {
		return err
	}

	n, err := repository.NewPostgresJobRepository(db).ReplaceAll(ctx, SeedJobs())
	if err != nil {
		return err
	}
	if n != len(SeedJobs()) {
		return fmt.Errorf("seeded %d of %d jobs", n, len(SeedJobs()))
	}
	return nil
}

func salary(s string) *string { return &s }

// SeedJobs returns the demo catalog. IDs and timestamps are assigned on insert.
func SeedJobs() []job.Job {
	return []job.Job{
		{
			Title:       "Frontend Developer",
			Company:     "TechCorp",
			Location:    "San Francisco, CA",
			Description: "We are looking for a talented Frontend Developer to join our team. The ideal candidate will have experience with React, HTML, CSS, and JavaScript.",
			Skills:      []string{"React", "JavaScript", "HTML", "CSS", "Tailwind CSS"},
			JobType:     job.TypeRemote,
			Salary:      salary("$100,000 - $120,000"),
		},
		{
			Title:       "Backend Developer",
			Company:     "DataSystems",
			Location:    "New York, NY",
			Description: "Join our team as a Backend Developer. You will be responsible for developing and maintaining our server-side applications.",
			Skills:      []string{"Node.js", "Express", "MongoDB", "API Development", "JavaScript"},
			JobType:     job.TypeOnsite,
			Salary:      salary("$110,000 - $130,000"),
		},
		{
			Title:       "Full Stack Developer",
			Company:     "WebSolutions",
			Location:    "Austin, TX",
			Description: "We are seeking a Full Stack Developer proficient in both frontend and backend technologies to help us build scalable web applications.",
			Skills:      []string{"React", "Node.js", "MongoDB", "Express", "JavaScript", "HTML", "CSS"},
			JobType:     job.TypeHybrid,
			Salary:      salary("$120,000 - $140,000"),
		},
		{
			Title:       "UI/UX Designer",
			Company:     "CreativeMinds",
			Location:    "Seattle, WA",
			Description: "Looking for a creative UI/UX Designer to create stunning user interfaces and improve user experience for our web and mobile applications.",
			Skills:      []string{"Figma", "Adobe XD", "UI Design", "UX Research", "Prototyping"},
			JobType:     job.TypeRemote,
			Salary:      salary("$90,000 - $110,000"),
		},
		{
			Title:       "DevOps Engineer",
			Company:     "CloudTech",
			Location:    "Chicago, IL",
			Description: "Join us as a DevOps Engineer to help build and maintain our cloud infrastructure and CI/CD pipelines.",
			Skills:      []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Linux", "Terraform"},
			JobType:     job.TypeOnsite,
			Salary:      salary("$130,000 - $150,000"),
		},
		{
			Title:       "Data Scientist",
			Company:     "AnalyticsPro",
			Location:    "Boston, MA",
			Description: "We are looking for a Data Scientist to analyze large datasets and build machine learning models to drive business decisions.",
			Skills:      []string{"Python", "Machine Learning", "SQL", "Data Analysis", "Statistics"},
			JobType:     job.TypeHybrid,
			Salary:      salary("$125,000 - $145,000"),
		},
		{
			Title:       "Mobile Developer",
			Company:     "AppWorks",
			Location:    "Los Angeles, CA",
			Description: "Join our team as a Mobile Developer to build native iOS and Android applications for our customers.",
			Skills:      []string{"React Native", "iOS", "Android", "JavaScript", "Swift", "Kotlin"},
			JobType:     job.TypeRemote,
			Salary:      salary("$110,000 - $130,000"),
		},
		{
			Title:       "Product Manager",
			Company:     "ProductVision",
			Location:    "Denver, CO",
			Description: "We are seeking a Product Manager to lead the development and launch of new products and features.",
			Skills:      []string{"Product Strategy", "Agile", "User Stories", "Roadmapping", "Market Research"},
			JobType:     job.TypeOnsite,
			Salary:      salary("$120,000 - $140,000"),
		},
		{
			Title:       "QA Engineer",
			Company:     "QualityTech",
			Location:    "Remote",
			Description: "Looking for a QA Engineer to ensure the quality of our software products through thorough testing and automation.",
			Skills:      []string{"Test Automation", "Selenium", "Jest", "API Testing", "Bug Tracking"},
			JobType:     job.TypeRemote,
			Salary:      salary("$90,000 - $110,000"),
		},
		{
			Title:       "Cybersecurity Analyst",
			Company:     "SecureNet",
			Location:    "Washington, DC",
			Description: "Join our team as a Cybersecurity Analyst to help protect our systems and data from security threats.",
			Skills:      []string{"Network Security", "Vulnerability Assessment", "Security Auditing", "Incident Response", "SIEM"},
			JobType:     job.TypeHybrid,
			Salary:      salary("$115,000 - $135,000"),
		},
	}
}
