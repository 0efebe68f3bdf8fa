package questions

import (
	"fmt"
	"strings"
)

// ecosystem overrides the first two generic templates for technologies it matches.
type ecosystem struct {
	name    string
	matches func(lower string) bool
	first   func(tech string) string
	second  func(tech string) string
}

func containsAny(subs ...string) func(string) bool {
	return func(lower string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
}

func fixed(s string) func(string) string {
	return func(string) string { return s }
}

// ecosystems are checked in order; the first match wins.
var ecosystems = []ecosystem{
	{
		name:    "python",
		matches: containsAny("python"),
		first:   fixed("How do you write a function in Python? Give a short example."),
		second:  fixed("What is a list in Python and how is it different from a tuple?"),
	},
	{
		name:    "react",
		matches: containsAny("react"),
		first:   fixed("What is a component in React?"),
		second:  fixed("How do you pass data from parent to child component in React?"),
	},
	{
		name:    "sql",
		matches: containsAny("sql", "postgres", "mysql"),
		first:   fixed("What is a database table and a row?"),
		second:  fixed("What is a primary key and why is it important?"),
	},
	{
		name:    "web-framework",
		matches: containsAny("django", "fastapi", "flask"),
		first: func(tech string) string {
			return fmt.Sprintf("What is a web framework like %s, and when would you use it?", tech)
		},
		second: fixed("How do you handle incoming HTTP requests in a simple route?"),
	},
	{
		name: "javascript",
		matches: func(lower string) bool {
			return strings.Contains(lower, "javascript") || lower == "js"
		},
		first:  fixed("What is JavaScript and how is it used in web development?"),
		second: fixed("What's the difference between var/let/const in JavaScript?"),
	},
	{
		name:    "node",
		matches: containsAny("node"),
		first:   fixed("What is Node.js used for?"),
		second:  fixed("How would you create a simple HTTP server in Node?"),
	},
}

func genericTemplates(tech string) []string {
	return []string{
		fmt.Sprintf("What is %s and where is it commonly used?", tech),
		fmt.Sprintf("Name one common task you would perform using %s. How would you start?", tech),
		fmt.Sprintf("Explain a basic concept or term related to %s that a beginner should know.", tech),
		fmt.Sprintf("Describe a simple example or use-case of %s.", tech),
		fmt.Sprintf("What are common tools or libraries used with %s?", tech),
	}
}

// Fallback returns up to five template questions about technology. It never
// fails. years is accepted for symmetry with BuildPrompt and does not change
// the templates.
func Fallback(technology string, count int, years float64) []Question {
	templates := genericTemplates(technology)

	if eco := matchEcosystem(technology); eco != nil {
		templates[0] = eco.first(technology)
		templates[1] = eco.second(technology)
	}

	if count > len(templates) {
		count = len(templates)
	}
	if count < 0 {
		count = 0
	}

	out := make([]Question, 0, count)
	for _, text := range templates[:count] {
		out = append(out, Question{Technology: technology, Text: text})
	}
	return out
}

// Ecosystem reports which template family Fallback uses for technology, or
// "generic" when none matches.
func Ecosystem(technology string) string {
	if eco := matchEcosystem(technology); eco != nil {
		return eco.name
	}
	return "generic"
}

func matchEcosystem(technology string) *ecosystem {
	lower := strings.ToLower(technology)
	for i := range ecosystems {
		if ecosystems[i].matches(lower) {
			return &ecosystems[i]
		}
	}
	return nil
}
