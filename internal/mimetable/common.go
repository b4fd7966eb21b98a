package mimetable

// CommonTypes maps extensions to types that are in wide use but are not
// registered, or are missing from most host databases. They are only
// consulted for non-strict lookups, after the strict layer found nothing.
var CommonTypes = map[string]string{
	// Legacy aliases kept by most desktop environments
	".rtf":  "application/rtf",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".pct":  "image/pict",
	".pic":  "image/pict",
	".pict": "image/pict",
	".xul":  "text/xul",

	// Audio
	".aac":  "audio/aac",
	".amr":  "audio/amr",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wma":  "audio/x-ms-wma",

	// Video
	".3gp":  "video/3gpp",
	".asf":  "video/x-ms-asf",
	".flv":  "video/x-flv",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".ogv":  "video/ogg",
	".webm": "video/webm",
	".wmv":  "video/x-ms-wmv",

	// Archives and packages
	".7z":  "application/x-7z-compressed",
	".apk": "application/vnd.android.package-archive",
	".deb": "application/vnd.debian.binary-package",
	".dmg": "application/x-apple-diskimage",
	".iso": "application/x-cd-image",
	".lz4": "application/x-lz4",
	".msi": "application/x-ms-installer",
	".rar": "application/vnd.rar",
	".rpm": "application/x-rpm",
	".tar": "application/x-tar",
	".zst": "application/zstd",

	// Word processing
	".doc":   "application/msword",
	".docm":  "application/vnd.ms-word.document.macroEnabled.12",
	".docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".dot":   "application/msword",
	".dotm":  "application/vnd.ms-word.template.macroEnabled.12",
	".epub":  "application/epub+zip",
	".lwp":   "application/vnd.lotus-wordpro",
	".mobi":  "application/x-mobipocket-ebook",
	".odt":   "application/vnd.oasis.opendocument.text",
	".pages": "application/vnd.apple.pages",
	".sxw":   "application/vnd.sun.xml.writer",
	".stw":   "application/vnd.sun.xml.writer.template",
	".sxg":   "application/vnd.sun.xml.writer.global",
	".wpd":   "application/vnd.wordperfect",
	".wps":   "application/vnd.ms-works",

	// Presentations
	".key":  "application/vnd.apple.keynote",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".pot":  "application/vnd.ms-powerpoint",
	".potm": "application/vnd.ms-powerpoint.template.macroEnabled.12",
	".potx": "application/vnd.openxmlformats-officedocument.presentationml.template",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptm": "application/vnd.ms-powerpoint.presentation.macroEnabled.12",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".sti":  "application/vnd.sun.xml.impress.template",
	".sxi":  "application/vnd.sun.xml.impress",

	// Spreadsheets
	".123":     "application/vnd.lotus-1-2-3",
	".dbf":     "application/vnd.dbf",
	".numbers": "application/vnd.apple.numbers",
	".ods":     "application/vnd.oasis.opendocument.spreadsheet",
	".tsv":     "text/tab-separated-values",
	".wk1":     "application/vnd.lotus-1-2-3",
	".wk2":     "application/vnd.lotus-1-2-3",
	".wk3":     "application/vnd.lotus-1-2-3",
	".wk4":     "application/vnd.lotus-1-2-3",
	".xls":     "application/vnd.ms-excel",
	".xlsb":    "application/vnd.ms-excel.sheet.binary.macroEnabled.12",
	".xlsm":    "application/vnd.ms-excel.sheet.macroEnabled.12",
	".xlsx":    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	// Graphics
	".cgm":  "image/cgm",
	".dwg":  "image/vnd.dwg",
	".gv":   "text/vnd.graphviz",
	".heic": "image/heic",
	".tif":  "image/tiff",
	".tiff": "image/tiff",

	// Source code and configuration
	".go":    "text/x-go",
	".kt":    "text/x-kotlin",
	".php":   "application/x-php",
	".pl":    "text/x-perl",
	".py":    "text/x-python",
	".rb":    "text/x-ruby",
	".rs":    "text/x-rust",
	".scala": "text/x-scala",
	".sql":   "application/sql",
	".swift": "text/x-swift",
	".toml":  "application/toml",
	".yaml":  "application/yaml",
	".yml":   "application/yaml",

	// Fonts
	".eot":   "application/vnd.ms-fontobject",
	".otf":   "font/otf",
	".ttf":   "font/ttf",
	".woff":  "font/woff",
	".woff2": "font/woff2",

	// 3D models
	".3mf":  "model/3mf",
	".obj":  "model/obj",
	".ply":  "model/ply",
	".stl":  "model/stl",
	".step": "model/step",

	// Databases
	".mdb":     "application/x-msaccess",
	".sqlite":  "application/vnd.sqlite3",
	".sqlite3": "application/vnd.sqlite3",
}
