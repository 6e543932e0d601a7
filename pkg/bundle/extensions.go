package bundle

// BinaryExtensions lists file extensions (without the leading dot,
// lowercase) that are always treated as binary.
var BinaryExtensions = map[string]bool{
	// Images
	"png": true, "jpg": true, "jpeg": true, "gif": true, "bmp": true,
	"ico": true, "webp": true, "tiff": true, "tif": true, "avif": true,
	"heic": true, "psd": true,
	// Archives and packages
	"zip": true, "tar": true, "gz": true, "bz2": true, "xz": true,
	"7z": true, "rar": true, "jar": true, "war": true, "deb": true,
	"rpm": true, "apk": true, "msi": true, "dmg": true, "iso": true,
	// Audio and video
	"mp3": true, "wav": true, "ogg": true, "flac": true, "aac": true,
	"m4a": true, "mp4": true, "avi": true, "mov": true, "mkv": true,
	"webm": true, "wmv": true, "flv": true,
	// Executables and object code
	"exe": true, "dll": true, "so": true, "dylib": true, "bin": true,
	"o": true, "a": true, "obj": true, "class": true, "pyc": true,
	"wasm": true,
	// Fonts
	"woff": true, "woff2": true, "ttf": true, "otf": true, "eot": true,
	// Documents and data blobs
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true, "db": true, "sqlite": true, "sqlite3": true,
}

// TextExtensions lists file extensions classified as text. The dotted-suffix
// names of allow-listed hidden configs ("gitignore", "npmrc", ...) appear
// here because the extension of ".gitignore" is the whole trailing name.
var TextExtensions = map[string]bool{
	// Source
	"js": true, "jsx": true, "ts": true, "tsx": true, "mjs": true,
	"cjs": true, "go": true, "py": true, "rb": true, "rs": true,
	"java": true, "kt": true, "kts": true, "c": true, "h": true,
	"cpp": true, "hpp": true, "cc": true, "hh": true, "cs": true,
	"php": true, "swift": true, "scala": true, "clj": true, "cljs": true,
	"ex": true, "exs": true, "erl": true, "hrl": true, "lua": true,
	"pl": true, "pm": true, "r": true, "jl": true, "dart": true,
	"groovy": true, "gradle": true, "vue": true, "svelte": true,
	"astro": true, "sql": true, "graphql": true, "gql": true,
	"proto": true,
	// Scripts
	"sh": true, "bash": true, "zsh": true, "fish": true, "ps1": true,
	"bat": true, "cmd": true,
	// Markup and docs
	"html": true, "htm": true, "xml": true, "svg": true, "css": true,
	"scss": true, "sass": true, "less": true, "md": true,
	"markdown": true, "rst": true, "txt": true, "text": true,
	"adoc": true, "tex": true,
	// Config and data
	"json": true, "jsonc": true, "json5": true, "yaml": true, "yml": true,
	"toml": true, "ini": true, "cfg": true, "conf": true, "env": true,
	"properties": true, "csv": true, "tsv": true, "log": true,
	"lock": true, "mk": true, "cmake": true,
	// Dotfile suffixes
	"gitignore": true, "gitattributes": true, "editorconfig": true,
	"npmrc": true, "nvmrc": true, "babelrc": true, "dockerignore": true,
	"prettierrc": true, "eslintrc": true,
}

// textBasenames are conventional text filenames without an extension,
// matched case-insensitively as substrings.
var textBasenames = []string{
	"readme",
	"license",
	"licence",
	"changelog",
	"contributing",
	"authors",
	"notice",
	"codeowners",
	"makefile",
	"dockerfile",
	"gemfile",
	"rakefile",
	"procfile",
	"justfile",
	"version",
}
