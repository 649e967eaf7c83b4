package planglist

// ProgrammingLang describes one language supported by the remote execution
// API. Version strings follow the execution engine's installed runtimes and
// are maintained here as a fixed table.
type ProgrammingLang struct {
	ID       string
	FullName string
	Version  string

	// LineOrientedStdin marks languages whose common input idiom reads one
	// value per line (e.g. input(), readline()). For these, a single input
	// line of space-separated values is reflowed to one value per line
	// before dispatch.
	LineOrientedStdin bool
}

func ListProgrammingLanguages() []ProgrammingLang {
	return []ProgrammingLang{
		{ID: "javascript", FullName: "JavaScript (Node.js)", Version: "18.15.0", LineOrientedStdin: true},
		{ID: "typescript", FullName: "TypeScript", Version: "5.0.3", LineOrientedStdin: true},
		{ID: "python", FullName: "Python 3", Version: "3.10.0", LineOrientedStdin: true},
		{ID: "java", FullName: "Java", Version: "15.0.2"},
		{ID: "csharp", FullName: "C#", Version: "6.12.0"},
		{ID: "php", FullName: "PHP", Version: "8.2.3"},
		{ID: "go", FullName: "Go", Version: "1.16.2"},
		{ID: "cpp", FullName: "C++ (GCC)", Version: "10.2.0"},
		{ID: "c", FullName: "C (GCC)", Version: "10.2.0"},
		{ID: "rust", FullName: "Rust", Version: "1.68.2"},
	}
}

// GetProgrammingLanguageById returns the language with the given ID or an
// invalid-language error.
func GetProgrammingLanguageById(id string) (*ProgrammingLang, error) {
	for _, lang := range ListProgrammingLanguages() {
		if lang.ID == id {
			return &lang, nil
		}
	}
	return nil, ErrInvalidProgLang()
}
