package content

const defaultGitHub = "https://github.com/rasta-pasta-710"

// Default returns the built-in portfolio content with the about body
// already rendered.
func Default() Content {
	c := Content{
		Profile: Profile{
			Greeting: "Hey, I'm",
			Name:     "rasta-pasta-710",
			Title:    "Full Stack Developer & Creative Problem Solver",
			Intro:    "Building beautiful, functional, and user-friendly applications with modern technologies. Welcome to my digital space!",
		},
		About: About{
			Body: `I'm a passionate developer who loves creating digital experiences that make a difference. With a focus on clean code, user experience, and modern technologies, I bring ideas to life.

When I'm not coding, you'll find me exploring new technologies, contributing to open source, or working on side projects that push the boundaries of what's possible.

I believe in continuous learning and staying up-to-date with the latest industry trends and best practices.
`,
			Services: []string{
				"Full Stack Web Development",
				"UI/UX Design & Implementation",
				"Mobile App Development",
				"API Development & Integration",
				"Cloud Infrastructure & DevOps",
			},
		},
		Skills: []Skill{
			{Name: "React", Level: 90},
			{Name: "TypeScript", Level: 85},
			{Name: "Node.js", Level: 80},
			{Name: "Python", Level: 75},
			{Name: "JavaScript", Level: 90},
			{Name: "CSS/Tailwind", Level: 85},
			{Name: "Git", Level: 80},
			{Name: "Docker", Level: 70},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "Portfolio Website",
				Description: "A modern, responsive portfolio website built with React, TypeScript, and Tailwind CSS. Features smooth animations and a clean design.",
				Tech:        []string{"React", "TypeScript", "Tailwind CSS", "Vite"},
				GitHub:      defaultGitHub,
				Demo:        "#",
			},
			{
				ID:          2,
				Title:       "E-Commerce Platform",
				Description: "Full-stack e-commerce solution with user authentication, payment processing, and admin dashboard.",
				Tech:        []string{"React", "Node.js", "MongoDB", "Stripe"},
				GitHub:      defaultGitHub,
				Demo:        "#",
			},
			{
				ID:          3,
				Title:       "Task Management App",
				Description: "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
				Tech:        []string{"React", "TypeScript", "WebSocket", "PostgreSQL"},
				GitHub:      defaultGitHub,
				Demo:        "#",
			},
		},
		Contact: Contact{
			Heading: "Get In Touch",
			Message: "I'm always open to new opportunities, collaborations, or just a friendly chat. Drop me a line and I'll get back to you.",
			Email:   "hello@example.com",
			Links: []Link{
				{Label: "GitHub", URL: defaultGitHub},
			},
		},
	}
	html, err := Markdown(c.About.Body)
	if err != nil {
		panic("content: render default about: " + err.Error())
	}
	c.About.HTML = html
	return c
}
