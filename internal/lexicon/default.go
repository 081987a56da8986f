package lexicon

import "github.com/jonathan/skillmatch/internal/types"

// Default returns the built-in weighted vocabulary. Phrases are stored
// lowercase; weights encode relative importance within their category.
func Default() *Lexicon {
	return New([]types.Skill{
		// Core programming languages
		{Name: "python", Weight: 1.0},
		{Name: "java", Weight: 1.0},
		{Name: "javascript", Weight: 0.9},
		{Name: "sql", Weight: 0.9},
		{Name: "c++", Weight: 0.8},
		{Name: "c#", Weight: 0.8},
		{Name: "go", Weight: 0.7},
		{Name: "rust", Weight: 0.7},

		// Data science and analytics
		{Name: "machine learning", Weight: 1.0},
		{Name: "deep learning", Weight: 0.9},
		{Name: "nlp", Weight: 0.9},
		{Name: "pandas", Weight: 0.8},
		{Name: "numpy", Weight: 0.7},
		{Name: "scikit-learn", Weight: 0.8},
		{Name: "tensorflow", Weight: 0.9},
		{Name: "keras", Weight: 0.8},
		{Name: "pytorch", Weight: 0.8},

		// Visualization and BI
		{Name: "power bi", Weight: 0.8},
		{Name: "tableau", Weight: 0.8},
		{Name: "excel", Weight: 0.7},
		{Name: "matplotlib", Weight: 0.6},
		{Name: "seaborn", Weight: 0.6},
		{Name: "plotly", Weight: 0.6},

		// Cloud and DevOps
		{Name: "docker", Weight: 0.7},
		{Name: "kubernetes", Weight: 0.6},
		{Name: "aws", Weight: 0.7},
		{Name: "azure", Weight: 0.6},
		{Name: "gcp", Weight: 0.6},
		{Name: "mlops", Weight: 0.7},

		// Development tooling
		{Name: "git", Weight: 0.6},
		{Name: "jenkins", Weight: 0.5},
		{Name: "ci/cd", Weight: 0.6},
		{Name: "rest apis", Weight: 0.7},
		{Name: "graphql", Weight: 0.6},
		{Name: "microservices", Weight: 0.6},

		// Frameworks
		{Name: "spring boot", Weight: 0.7},
		{Name: "django", Weight: 0.6},
		{Name: "flask", Weight: 0.6},
		{Name: "react", Weight: 0.6},
		{Name: "angular", Weight: 0.6},
		{Name: "vue", Weight: 0.5},

		// Methodologies
		{Name: "agile", Weight: 0.6},
		{Name: "scrum", Weight: 0.5},
		{Name: "system design", Weight: 0.7},
		{Name: "data cleaning", Weight: 0.6},
		{Name: "reporting", Weight: 0.5},
		{Name: "statistics", Weight: 0.7},

		// Specialized
		{Name: "computer vision", Weight: 0.8},
		{Name: "natural language processing", Weight: 0.8},
		{Name: "stakeholder management", Weight: 0.5},
		{Name: "user stories", Weight: 0.5},
		{Name: "product roadmap", Weight: 0.5},
		{Name: "data pipeline", Weight: 0.6},
	})
}
