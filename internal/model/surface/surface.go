package surface

import (
	"time"

	"github.com/miguelromero/miguelbot/backend/internal/classify"
)

// GreetPolicy controls how a surface produces its opening bot message.
type GreetPolicy string

const (
	// GreetImmediate seeds the greeting at session creation, no delay.
	GreetImmediate GreetPolicy = "immediate"
	// GreetDelayed schedules the greeting once after the surface attaches,
	// gated so it fires at most once per session.
	GreetDelayed GreetPolicy = "delayed"
	// GreetNone never greets on its own.
	GreetNone GreetPolicy = "none"
)

// Surface describes one presentation of the conversation core. The response
// table and the trigger policy are the only things that differ between the
// inline bot page and the floating widget, so both are plain configuration.
type Surface struct {
	ID          string                         `json:"id"`
	Name        string                         `json:"name"`
	Greeting    string                         `json:"greeting"`
	GreetPolicy GreetPolicy                    `json:"greetPolicy"`
	GreetDelay  time.Duration                  `json:"-"`
	ReplyDelay  time.Duration                  `json:"-"`
	Replies     map[classify.ResponseID]string `json:"-"`
}

// Reply resolves a response id against the surface's table, falling through
// to the fallback entry for ids the table does not bind. A table therefore
// only needs a fallback entry to answer everything.
func (s Surface) Reply(id classify.ResponseID) string {
	if text, ok := s.Replies[id]; ok {
		return text
	}
	return s.Replies[classify.Fallback]
}

// Seed provides the two surfaces shipped with the portfolio site.
func Seed() []Surface {
	pageReplies := map[classify.ResponseID]string{
		classify.Greeting:   "Hello! I'm MiguelBot, a digital version of Miguel. Feel free to ask me about Miguel's skills, experience, projects, or interests!",
		classify.Fallback:   "I don't have specific information about that yet. Feel free to ask about Miguel's skills, experience, projects, or education!",
		classify.Skills:     "Miguel is proficient in JavaScript, TypeScript, React, Next.js, Node.js, Python, and SQL. He also has experience with Tailwind CSS, MongoDB, Firebase, and AWS.",
		classify.Experience: "Miguel has worked as a Software Engineer Intern at Tech Company A and as a Frontend Developer Intern at Design Agency B. He also has experience with university projects and hackathons.",
		classify.Education:  "Miguel holds a B.S. in Computer Science from the University of California, where he graduated in 2023.",
		classify.Projects:   "Miguel has worked on various projects including an e-commerce platform, task management app, data visualization dashboard, and more. Check out the Projects page for more details!",
		classify.Interests:  "Outside of coding, Miguel enjoys hiking, reading science fiction books, experimenting with new recipes, and contributing to open-source projects.",
		classify.Contact:    "You can reach Miguel through email, LinkedIn, or GitHub. Check the About page for specific contact information.",
	}

	return []Surface{
		{
			ID:          "page",
			Name:        "MiguelBot page",
			Greeting:    pageReplies[classify.Greeting],
			GreetPolicy: GreetImmediate,
			ReplyDelay:  1500 * time.Millisecond,
			Replies:     pageReplies,
		},
		{
			ID:          "widget",
			Name:        "Floating MiguelBot",
			Greeting:    "👋 Hi there! I'm MiguelBot, Miguel's digital assistant. Feel free to ask me questions about Miguel's experience, projects, or skills!",
			GreetPolicy: GreetDelayed,
			GreetDelay:  3 * time.Second,
			ReplyDelay:  time.Second,
			// The widget answers everything with its placeholder for now.
			Replies: map[classify.ResponseID]string{
				classify.Fallback: "This is a placeholder response. The actual bot integration will be implemented soon!",
			},
		},
	}
}
