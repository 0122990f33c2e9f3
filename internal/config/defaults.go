package config

// Built-in tables used when config.ini does not override them. Keys are
// lowercase; classification lowercases filenames before lookup.

func defaultLanguageMappings() map[string]string {
	return map[string]string{
		// Python
		".py":  "python",
		".pyw": "python",
		".pyx": "python",

		// Ruby
		".rb":  "ruby",
		".rbw": "ruby",

		// Templates
		".erb":      "erb",
		".html.erb": "erb",
		".js.erb":   "erb",
		".css.erb":  "erb",

		// HTML
		".html":   "html",
		".htm":    "html",
		".jinja":  "html",
		".jinja2": "html",
		".j2":     "html",
		".django": "html",

		// JavaScript
		".js":  "javascript",
		".jsx": "jsx",
		".ts":  "typescript",
		".tsx": "tsx",
		".vue": "vue",

		// Styling
		".css":  "css",
		".scss": "scss",
		".sass": "sass",
		".less": "less",

		// Config files
		".json": "json",
		".yaml": "yaml",
		".yml":  "yaml",
		".toml": "toml",
		".ini":  "ini",
		".cfg":  "ini",
		".conf": "bash",

		// Shell
		".sh":   "bash",
		".bash": "bash",
		".zsh":  "zsh",
		".fish": "fish",

		// SQL
		".sql": "sql",

		// Markdown/Text
		".md":  "markdown",
		".txt": "text",
		".rst": "rst",

		// Docker
		"dockerfile":  "dockerfile",
		".dockerfile": "dockerfile",

		// Other
		".xml": "xml",
		".csv": "csv",
		".log": "text",
	}
}

func defaultExcludePatterns() []string {
	return []string{
		".keep",
		".gitkeep",
		".ds_store",
		"thumbs.db",
		".tmp",
		".temp",
	}
}

func defaultCommentPatterns() map[string][]string {
	return map[string][]string{
		"python":     {`^#.*$`, `^\s*""".*?"""\s*$`, `^\s*'''.*?'''\s*$`},
		"ruby":       {`^#.*$`, `^\s*=begin.*?=end\s*$`},
		"javascript": {`^//.*$`, `^\s*/\*.*?\*/\s*$`},
		"css":        {`^\s*/\*.*?\*/\s*$`},
		"html":       {`^\s*<!--.*?-->\s*$`},
		"sql":        {`^--.*$`, `^\s*/\*.*?\*/\s*$`},
		"bash":       {`^#.*$`},
		"yaml":       {`^#.*$`},
		"ini":        {`^[#;].*$`},
		"erb":        {`^#.*$`, `^\s*<!--.*?-->\s*$`},
	}
}
