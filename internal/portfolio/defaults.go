package portfolio

import "github.com/fastygo/portfolio/domain"

// Defaults returns the document shown when the store has nothing to offer.
// Each call builds a new value, so callers may mutate the result freely.
func Defaults() domain.Portfolio {
	return domain.Portfolio{
		Hero: domain.HeroSection{
			Title:    "Building the Future of Web",
			Subtitle: "Senior Full-Stack Engineer specializing in scalable React applications and AI integration.",
			ImageURL: "https://picsum.photos/400/400",
			CTAText:  "View My Work",
		},
		About: domain.AboutSection{
			Bio: "I am a passionate developer with over 5 years of experience in building modern web applications. " +
				"I love solving complex problems and creating intuitive user experiences. " +
				"My expertise spans across the entire JavaScript ecosystem.",
			Skills: []string{"React", "TypeScript", "Node.js", "Next.js", "Tailwind", "PostgreSQL", "AWS", "Docker"},
		},
		Stats: []domain.StatItem{
			{ID: "1", Label: "Years Experience", Value: "5+"},
			{ID: "2", Label: "Projects Completed", Value: "50+"},
			{ID: "3", Label: "Satisfied Clients", Value: "100%"},
			{ID: "4", Label: "Commit Count", Value: "5k+"},
		},
		Experience: []domain.Experience{
			{
				ID:          "1",
				Role:        "Senior Frontend Engineer",
				Company:     "TechCorp Inc.",
				Year:        "2022 - Present",
				Description: "Leading a team of 5 developers building scalable React applications.",
			},
			{
				ID:          "2",
				Role:        "Full Stack Developer",
				Company:     "Creative Solutions",
				Year:        "2020 - 2022",
				Description: "Developed end-to-end e-commerce solutions using Next.js and Supabase.",
			},
			{
				ID:          "3",
				Role:        "Web Developer",
				Company:     "Digital Agency",
				Year:        "2018 - 2020",
				Description: "Crafted pixel-perfect UIs for various high-profile clients.",
			},
		},
		Certificates: []domain.CertificateItem{
			{ID: "1", Title: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023-08", URL: "#"},
			{ID: "2", Title: "Meta Frontend Developer Professional", Issuer: "Meta", Date: "2023-01", URL: "#"},
		},
		Projects: []domain.ProjectItem{
			{
				ID:          "1",
				Title:       "E-Commerce Dashboard",
				Description: "A comprehensive analytics dashboard for online retailers featuring real-time data visualization.",
				TechStack:   []string{"React", "D3.js", "Supabase"},
				ImageURL:    "https://picsum.photos/600/400?random=1",
				DemoURL:     "#",
				RepoURL:     "#",
			},
			{
				ID:          "2",
				Title:       "AI Content Generator",
				Description: "SaaS application leveraging Gemini API to help writers generate creative content blocks.",
				TechStack:   []string{"Next.js", "Gemini API", "Stripe"},
				ImageURL:    "https://picsum.photos/600/400?random=2",
				DemoURL:     "#",
				RepoURL:     "#",
			},
			{
				ID:          "3",
				Title:       "Task Master",
				Description: "Collaborative project management tool with real-time updates and team workspaces.",
				TechStack:   []string{"Vue.js", "Firebase", "Pinia"},
				ImageURL:    "https://picsum.photos/600/400?random=3",
				DemoURL:     "#",
				RepoURL:     "#",
			},
		},
		Blogs: []domain.BlogItem{
			{
				ID:       "1",
				Title:    "The Future of React Server Components",
				Excerpt:  "Exploring how RSCs are changing the way we build performant web applications.",
				Content:  "Full content would go here...",
				Date:     "2023-10-15",
				ReadTime: "5 min read",
			},
			{
				ID:       "2",
				Title:    "Mastering Tailwind CSS",
				Excerpt:  "Tips and tricks to speed up your styling workflow without sacrificing maintainability.",
				Content:  "Full content would go here...",
				Date:     "2023-09-22",
				ReadTime: "8 min read",
			},
		},
		Contact: domain.ContactInfo{
			Email:    "dev@example.com",
			GitHub:   "github.com/developer",
			LinkedIn: "linkedin.com/in/developer",
			Twitter:  "twitter.com/dev_guru",
		},
	}
}
