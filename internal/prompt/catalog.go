package prompt

import "strings"

// Choice is a selectable value with its display label.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var Languages = []Choice{
	{Value: "python", Label: "Python"},
	{Value: "fastapi", Label: "FastAPI"},
	{Value: "nextjs", Label: "Next.js"},
	{Value: "react", Label: "React"},
	{Value: "typescript", Label: "TypeScript"},
}

var Topics = map[string][]Choice{
	"python": {
		{Value: "variables-data-types", Label: "Variables & Data Types"},
		{Value: "control-flow", Label: "Control Flow (if/else, loops)"},
		{Value: "functions", Label: "Functions & Parameters"},
		{Value: "data-structures", Label: "Data Structures (lists, dicts)"},
		{Value: "oop", Label: "Object-Oriented Programming"},
		{Value: "error-handling", Label: "Error Handling & Exceptions"},
		{Value: "modules-packages", Label: "Modules & Packages"},
		{Value: "file-io", Label: "File I/O Operations"},
		{Value: "libraries", Label: "Popular Libraries (pandas, numpy)"},
	},
	"fastapi": {
		{Value: "basic-setup", Label: "Basic Setup & Installation"},
		{Value: "path-operations", Label: "Path Operations & Routing"},
		{Value: "request-response", Label: "Request & Response Models"},
		{Value: "pydantic-models", Label: "Pydantic Data Validation"},
		{Value: "dependency-injection", Label: "Dependency Injection System"},
		{Value: "authentication", Label: "Authentication & Security"},
		{Value: "async-await", Label: "Async/Await & Performance"},
		{Value: "database-integration", Label: "Database Integration"},
		{Value: "testing-debugging", Label: "Testing & Debugging"},
	},
	"nextjs": {
		{Value: "app-router", Label: "App Router & Routing"},
		{Value: "server-components", Label: "Server & Client Components"},
		{Value: "rendering", Label: "SSR, SSG & ISR"},
		{Value: "api-routes", Label: "API Routes & Route Handlers"},
		{Value: "data-fetching", Label: "Data Fetching Strategies"},
		{Value: "styling", Label: "Styling (CSS, Tailwind)"},
		{Value: "image-optimization", Label: "Image & Performance Optimization"},
		{Value: "middleware", Label: "Middleware & Authentication"},
		{Value: "deployment", Label: "Deployment & Production"},
	},
	"react": {
		{Value: "components-jsx", Label: "Components & JSX"},
		{Value: "hooks", Label: "React Hooks (useState, useEffect)"},
		{Value: "state-management", Label: "State Management"},
		{Value: "props-context", Label: "Props & Context API"},
		{Value: "event-handling", Label: "Event Handling"},
		{Value: "lifecycle", Label: "Component Lifecycle"},
		{Value: "forms-controlled", Label: "Forms & Controlled Components"},
		{Value: "performance", Label: "Performance Optimization"},
		{Value: "testing", Label: "Testing React Components"},
	},
	"typescript": {
		{Value: "basic-types", Label: "Basic Types & Type Annotations"},
		{Value: "interfaces", Label: "Interfaces & Object Types"},
		{Value: "functions", Label: "Function Types & Parameters"},
		{Value: "generics", Label: "Generics & Type Parameters"},
		{Value: "union-intersection", Label: "Union & Intersection Types"},
		{Value: "classes", Label: "Classes & Inheritance"},
		{Value: "modules", Label: "Modules & Namespaces"},
		{Value: "utility-types", Label: "Utility Types & Mapped Types"},
		{Value: "type-guards", Label: "Type Guards & Type Narrowing"},
	},
}

var Difficulties = []Choice{
	{Value: "beginner", Label: "Beginner"},
	{Value: "intermediate", Label: "Intermediate"},
	{Value: "advanced", Label: "Advanced"},
}

var QuestionCounts = []int{5, 10, 15, 20, 25, 30}

// ResolveLanguage maps a catalog value to its label. Free text is returned trimmed.
func ResolveLanguage(value string) string {
	return resolve(Languages, value)
}

// ResolveTopic maps a topic value of language to its label. Free text is returned trimmed.
func ResolveTopic(language, value string) string {
	key := strings.ToLower(strings.TrimSpace(language))
	for _, lang := range Languages {
		if strings.EqualFold(lang.Label, key) {
			key = lang.Value
		}
	}
	return resolve(Topics[key], value)
}

func resolve(choices []Choice, value string) string {
	trimmed := strings.TrimSpace(value)
	for _, choice := range choices {
		if strings.EqualFold(choice.Value, trimmed) {
			return choice.Label
		}
	}
	return trimmed
}
