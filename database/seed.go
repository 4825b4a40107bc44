package database

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/vijayleo46/portfolio-backend/models"
)

func strPtr(s string) *string {
	return &s
}

// Seed loads the initial portfolio fixture. It is idempotent in the simplest
// possible way: if any project already exists, the whole load is skipped.
func (d Database) Seed() error {
	count, err := d.projectRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to check existing projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	projects := []*models.Project{
		{
			Title:        "Future Assistant",
			Description:  "AI-Powered Virtual Assistant with Voice Recognition.",
			Image:        "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?q=80&w=2006&auto=format&fit=crop",
			DemoURL:      strPtr("https://future-assistant.vercel.app/"),
			GithubURL:    strPtr("https://github.com/Vijayleo46/Future-Assistant"),
			Technologies: datatypes.NewJSONSlice([]string{"Python", "AI", "Speech Recognition", "NLP"}),
			Features: datatypes.NewJSONSlice([]string{
				"Voice-activated AI assistant with natural language processing.",
				"Performs tasks like web searches, weather updates, and automation.",
				"Live demo available with interactive voice commands.",
			}),
		},
		{
			Title:        "MindCanvas",
			Description:  "Time Memory Engine & Prediction System.",
			Image:        "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e?q=80&w=1974&auto=format&fit=crop",
			Technologies: datatypes.NewJSONSlice([]string{"AI", "React", "Node.js"}),
			Features: datatypes.NewJSONSlice([]string{
				"Store, explore, and predict memories across a 300-year timeline.",
				"Unique interface for memory visualization and time travel.",
			}),
		},
		{
			Title:        "IntelliMeal",
			Description:  "AI-Powered Food Recognition & Calorie Tracker.",
			Image:        "https://images.unsplash.com/photo-1543362906-acfc16c67564?q=80&w=1965&auto=format&fit=crop",
			Technologies: datatypes.NewJSONSlice([]string{"AI", "Computer Vision", "React"}),
			Features: datatypes.NewJSONSlice([]string{
				"Upload food photos to instantly recognize dishes.",
				"Smart calorie breakdown (Protein, Fat, Carbs) and tracking.",
			}),
		},
		{
			Title:        "AgriNova",
			Description:  "Cross-platform Agricultural Marketplace built with Flutter & Dart.",
			Image:        "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?q=80&w=2070&auto=format&fit=crop",
			Technologies: datatypes.NewJSONSlice([]string{"Flutter", "Dart", "Firebase"}),
			Features: datatypes.NewJSONSlice([]string{
				"Native performance on both iOS and Android using Flutter framework.",
				"Real-time data synchronization with Firebase backend.",
				"Integrated secure payments, order tracking, and delivery management.",
			}),
		},
	}
	for _, project := range projects {
		if err := d.projectRepo.Add(project); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", project.Title, err)
		}
	}

	experience := []*models.Experience{
		{
			Role:    "App Developer",
			Company: "SYSDEVCODE",
			Period:  "Dec 2025 - Present",
			Details: datatypes.NewJSONSlice([]string{
				"Joining as an App Developer to build innovative mobile and web solutions.",
				"Specializing in application development cycles and system architecture.",
			}),
		},
		{
			Role:    "AI Software Developer Intern",
			Company: "AIXE Labs Private Limited",
			Period:  "Oct 2025 - Present",
			Details: datatypes.NewJSONSlice([]string{
				"Developing creative, intelligent, and scalable solutions for Artograph AI.",
				"Working on a next-generation AI platform utilizing React.js and modern web stacks.",
			}),
		},
		{
			Role:    "Flutter Developer Advance Intern",
			Company: "Spectrum Software Solutions, Kochi",
			Period:  "July 2024 – Aug 2024",
			Details: datatypes.NewJSONSlice([]string{
				"Developed and optimized cross-platform apps with Flutter & Firebase.",
				"Implemented UI/UX enhancements, authentication, and API integrations.",
			}),
		},
	}
	for _, entry := range experience {
		if err := d.experienceRepo.Add(entry); err != nil {
			return fmt.Errorf("failed to seed experience %q: %w", entry.Role, err)
		}
	}

	education := []*models.Education{
		{
			Degree:      "B.E. Computer Science Engineering",
			Institution: "Anna University",
			Period:      "Sep 2021 - June 2025",
			Details: datatypes.NewJSONSlice([]string{
				"Specialized in software development and AI integration.",
				"Focused on system architecture and scalable solutions.",
			}),
		},
		{
			Degree:      "Vocational Higher Secondary",
			Institution: "Higher Secondary School",
			Period:      "June 2019 - Mar 2021",
			Details: datatypes.NewJSONSlice([]string{
				"Focused on programming fundamentals (CS & IT).",
			}),
		},
	}
	for _, entry := range education {
		if err := d.educationRepo.Add(entry); err != nil {
			return fmt.Errorf("failed to seed education %q: %w", entry.Degree, err)
		}
	}

	categories := []*models.SkillCategory{
		{
			Name: "Languages",
			Skills: []models.Skill{
				{Name: "Python", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/python/python-original.svg", Level: 90, Desc: strPtr("Expert in Django, Flask, AI/ML libraries, and automation scripts.")},
				{Name: "Dart", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/dart/dart-original.svg", Level: 88, Desc: strPtr("Advanced Flutter development with state management and native integrations.")},
				{Name: "JavaScript", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/javascript/javascript-original.svg", Level: 85, Desc: strPtr("Modern ES6+, async programming, and full-stack JavaScript development.")},
				{Name: "SQL", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/mysql/mysql-original.svg", Level: 80, Desc: strPtr("Database design, complex queries, optimization, and stored procedures.")},
			},
		},
		{
			Name: "Frameworks & Tech",
			Skills: []models.Skill{
				{Name: "Django", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/django/django-plain.svg", Level: 88},
				{Name: "Flutter", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/flutter/flutter-original.svg", Level: 92},
				{Name: "React", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/react/react-original.svg", Level: 87},
				{Name: "Node.js", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/nodejs/nodejs-original.svg", Level: 83},
			},
		},
		{
			Name: "Databases & Cloud",
			Skills: []models.Skill{
				{Name: "Supabase", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/supabase/supabase-original.svg", Level: 85},
				{Name: "MySQL", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/mysql/mysql-original.svg", Level: 82},
				{Name: "Firebase", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/firebase/firebase-original.svg", Level: 88},
			},
		},
		{
			Name: "Tools",
			Skills: []models.Skill{
				{Name: "Git", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/git/git-original.svg", Level: 90},
				{Name: "Figma", Logo: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/figma/figma-original.svg", Level: 80},
			},
		},
	}
	for _, category := range categories {
		if err := d.skillCategoryRepo.Add(category); err != nil {
			return fmt.Errorf("failed to seed skill category %q: %w", category.Name, err)
		}
	}

	contact := &models.ContactInfo{
		Name:     "VIJAY MARTIN",
		JobTitle: "Software Developer",
		Phone:    "+91 7736472576",
		Email:    "vijaymartin72@gmail.com",
		Location: "Kochi, Kerala, India",
		Linkedin: "https://linkedin.com/in/vijay-martin-86b430232",
		Github:   "https://github.com/Vijayleo46",
		Twitter:  strPtr("https://twitter.com/vijaymartin"),
		Dribbble: strPtr("https://dribbble.com/vijaymartin"),
	}
	if err := d.contactInfoRepo.Add(contact); err != nil {
		return fmt.Errorf("failed to seed contact info: %w", err)
	}

	return nil
}
