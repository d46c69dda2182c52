package content

// Project is one portfolio project card.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Links       Links    `json:"links"`
	Featured    bool     `json:"featured"`
}

// Links holds the optional outbound links of a project.
type Links struct {
	GitHub string `json:"github,omitempty"`
	Live   string `json:"live,omitempty"`
}

// Experience is one resume entry.
type Experience struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Period   string   `json:"period"`
	Location string   `json:"location"`
	Bullets  []string `json:"bullets"`
	Skills   []string `json:"skills"`
	Logo     string   `json:"logo"`
}

// GalleryItem is one showcase tile.
type GalleryItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// SkillSet groups skills by category, mirroring the skills page.
type SkillSet struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Databases  []string `json:"databases"`
	Other      []string `json:"other"`
}

// Catalog bundles all static portfolio content.
type Catalog struct {
	Projects    []Project
	Experiences []Experience
	Gallery     []GalleryItem
	Skills      SkillSet
}

// Seed returns the content shipped with the site.
func Seed() Catalog {
	return Catalog{
		Projects: []Project{
			{
				ID:          1,
				Title:       "E-Commerce Platform",
				Description: "A full-stack e-commerce platform with product catalog, cart functionality, and payment processing.",
				Tags:        []string{"React", "Next.js", "MongoDB", "Stripe"},
				Image:       "/placeholder-project1.jpg",
				Links:       Links{GitHub: "https://github.com/username/project1", Live: "https://project1.demo.com"},
				Featured:    true,
			},
			{
				ID:          2,
				Title:       "Task Management App",
				Description: "Productivity application for managing tasks with drag-and-drop interface and collaboration features.",
				Tags:        []string{"React", "Firebase", "Tailwind CSS", "DnD Kit"},
				Image:       "/placeholder-project2.jpg",
				Links:       Links{GitHub: "https://github.com/username/project2", Live: "https://project2.demo.com"},
				Featured:    true,
			},
			{
				ID:          3,
				Title:       "Data Visualization Dashboard",
				Description: "Interactive dashboard displaying data visualizations with filtering and export capabilities.",
				Tags:        []string{"React", "D3.js", "Express", "MongoDB"},
				Image:       "/placeholder-project3.jpg",
				Links:       Links{GitHub: "https://github.com/username/project3"},
			},
			{
				ID:          4,
				Title:       "Weather App",
				Description: "Real-time weather application with location search and 5-day forecast.",
				Tags:        []string{"JavaScript", "API Integration", "CSS"},
				Image:       "/placeholder-project4.jpg",
				Links:       Links{GitHub: "https://github.com/username/project4", Live: "https://project4.demo.com"},
			},
			{
				ID:          5,
				Title:       "Portfolio Website",
				Description: "Interactive portfolio website built with Next.js and Framer Motion.",
				Tags:        []string{"Next.js", "Tailwind CSS", "Framer Motion"},
				Image:       "/placeholder-project5.jpg",
				Links:       Links{GitHub: "https://github.com/username/portfolio"},
				Featured:    true,
			},
			{
				ID:          6,
				Title:       "Algorithm Visualizer",
				Description: "Web application for visualizing common algorithms like sorting and pathfinding.",
				Tags:        []string{"React", "JavaScript", "Algorithms"},
				Image:       "/placeholder-project6.jpg",
				Links:       Links{GitHub: "https://github.com/username/algo-visualizer", Live: "https://algo-viz.demo.com"},
			},
		},
		Experiences: []Experience{
			{
				ID:       1,
				Title:    "Software Engineer Intern",
				Company:  "Qualcomm",
				Period:   "May 2025 - Aug 2025",
				Location: "San Diego, CA",
				Bullets:  []string{},
				Skills:   []string{"React", "JavaScript", "Python", "Flask", "Docker", "Kubernetes"},
				Logo:     "/logos/qualcomm.png",
			},
			{
				ID:       2,
				Title:    "Software Engineer Intern",
				Company:  "Qualcomm",
				Period:   "May 2024 - Aug 2024",
				Location: "San Diego, CA",
				Bullets: []string{
					"Developed a web app using React (JavaScript), Python, and Flask for 1000+ users, reducing errors by 30%",
					"Streamlined 10K+ Jenkins jobs monthly, saving 50+ hours by implementing SQL to detect duplicates",
					"Deployed the app using Docker and Drekar, automating updates with Kubernetes for seamless integration",
					"Utilized RESTful APIs to retrieve inputs and implemented threading for concurrent submissions",
				},
				Skills: []string{"React", "JavaScript", "Python", "Flask", "SQL", "Docker", "Kubernetes", "RESTful APIs"},
				Logo:   "/logos/qualcomm.png",
			},
			{
				ID:       3,
				Title:    "Software Engineer Intern",
				Company:  "Hewlett Packard Enterprise",
				Period:   "May 2023 - Aug 2023",
				Location: "San Jose, CA",
				Bullets: []string{
					"Automated 100+ WPA3 test cases with Python, boosting testing efficiency for access point certifications",
					"Optimized network settings for Intel, Broadcom, and others, ensuring high performance across Windows and Linux",
					"Developed a search tool during an Aruba hackathon, improving bug troubleshooting efficiency by 80%",
				},
				Skills: []string{"Python", "Automation", "Windows", "Linux", "Networking"},
				Logo:   "/logos/hpe.png",
			},
			{
				ID:       4,
				Title:    "Millworks Associate",
				Company:  "The Home Depot",
				Period:   "Aug 2019 - May 2024",
				Location: "Pearland, TX",
				Bullets: []string{
					"Generated $27,000 in a single sale by providing tailored design solutions and expert advice",
					"Cross-trained up to 10 associates, ensuring seamless operations for 300+ customers daily",
					"Streamlined inventory management for 500+ tools and materials, improving fulfillment efficiency",
					"Resolved technical issues for 100+ customers by troubleshooting garage door openers",
				},
				Skills: []string{"Customer Service", "Technical Support", "Inventory Management", "Training"},
				Logo:   "/logos/home-depot.png",
			},
		},
		Gallery: []GalleryItem{
			{ID: 1, Title: "Web App Interface", Description: "UI design for a task management application", Type: "UI/UX"},
			{ID: 2, Title: "Mobile App Prototype", Description: "React Native application for health tracking", Type: "Mobile"},
			{ID: 3, Title: "Dashboard Design", Description: "Interactive analytics dashboard with customizable widgets", Type: "UI/UX"},
			{ID: 4, Title: "E-commerce Website", Description: "Full-stack online shopping platform", Type: "Web"},
			{ID: 5, Title: "Data Visualization", Description: "Interactive charts using D3.js", Type: "Data"},
			{ID: 6, Title: "Portfolio Design", Description: "Personal portfolio website showcasing projects", Type: "Web"},
			{ID: 7, Title: "Social Media App", Description: "Interface design for a photo sharing application", Type: "Mobile"},
			{ID: 8, Title: "Landing Page", Description: "Product launch page with animations", Type: "Web"},
		},
		Skills: SkillSet{
			Languages:  []string{"JavaScript", "TypeScript", "Python", "SQL", "HTML", "CSS"},
			Frameworks: []string{"React", "Next.js", "Node.js", "Express", "Tailwind CSS"},
			Tools:      []string{"Git", "Docker", "AWS", "Firebase", "Jest", "Cypress"},
			Databases:  []string{"MongoDB", "PostgreSQL", "MySQL", "Firebase"},
			Other:      []string{"RESTful APIs", "GraphQL", "Responsive Design", "UX/UI Design"},
		},
	}
}
