package provider

// =============================================================================
// Static Data — File
// =============================================================================

// fileExtensions maps each FileType to its extensions.
var fileExtensions = map[FileType][]string{
	FileSource: {
		".a", ".asm", ".asp", ".awk", ".c", ".class",
		".cpp", ".pl", ".js", ".java", ".clj", ".py",
		".rb", ".hs", ".erl", ".rs", ".swift", ".html",
		".json", ".xml", ".css", ".php", ".jl", ".r",
		".cs", ".d", ".lisp", ".cl", ".go", ".h", ".scala",
		".sc", ".ts", ".sql",
	},
	FileText:       {".doc", ".docx", ".log", ".rtf", ".md", ".pdf", ".odt", ".txt"},
	FileData:       {".csv", ".dat", ".ged", ".pps", ".ppt", ".pptx"},
	FileAudio:      {".flac", ".mp3", ".m3u", ".m4a", ".wav", ".wma"},
	FileVideo:      {".3gp", ".mp4", ".avi", ".m4v", ".mov", ".mpg", ".wmv"},
	FileImage:      {".bmp", ".jpg", ".jpeg", ".png", ".svg"},
	FileExecutable: {".apk", ".app", ".bat", ".jar", ".com", ".exe"},
	FileCompressed: {".7z", ".war", ".zip", ".tar.gz", ".tar.xz", ".rar"},
}

// =============================================================================
// Static Data — Development
// =============================================================================

var softwareLicenses = []string{
	"Apache License, 2.0 (Apache-2.0)",
	"The BSD 3-Clause License",
	"The BSD 2-Clause License",
	"GNU General Public License (GPL)",
	"General Public License (LGPL)",
	"MIT License (MIT)",
	"Mozilla Public License 2.0 (MPL-2.0)",
	"Common Development and Distribution License (CDDL-1.0)",
	"Eclipse Public License (EPL-1.0)",
}

var sqlDatabases = []string{"MariaDB", "MySQL", "PostgreSQL", "Oracle DB", "SQLite"}

var nosqlDatabases = []string{
	"MongoDB", "RethinkDB", "Couchbase", "CouchDB",
	"Aerospike", "MemcacheDB", "MUMPS", "Riak", "Redis",
	"AllegroGraph", "Neo4J", "InfiniteGraph",
}

var otherTech = []string{
	"Docker", "Rkt", "LXC", "Vagrant",
	"Elasticsearch", "Nginx", "Git",
	"Jira", "REST", "Apache Hadoop",
	"Scrum", "Redmine", "Mercurial",
	"Apache Kafka", "Apache Spark",
}

// =============================================================================
// Static Data — Hardware
// =============================================================================

var resolutions = []string{
	"1152x768", "1280x854", "1440x960",
	"2880x1920", "1024x768", "1152x864",
	"1280x960", "1400x1050", "1600x1200",
	"2048x1536", "3200x2400", "1280x768",
	"1280x1024", "2560x2048", "1280x720",
	"1365x768", "1600x900", "1920x1080",
	"1280x800", "1440x900", "1680x1050",
	"1920x1200", "2560x1600",
}

var screenSizes = []string{
	"14″", "12.1″", "12″", "14.4″",
	"15″", "15.7″", "13.3″", "13″",
	"17″", "15.4″", "14.1″",
}

var cpus = []string{"Intel® Core i3", "Intel® Core i5", "Intel® Core i7"}

var cpuFrequencies = []string{
	"3.50", "3.67", "2.2", "1.6",
	"2.7", "2.8", "3.2", "3.0",
	"2.5", "2.9", "2.4", "4.0",
	"3.8", "3.7", "3.9", "4.2",
	"2.3", "3.3", "3.1",
}

var generations = []string{
	"2nd Generation",
	"3rd Generation",
	"4th Generation",
	"5th Generation",
	"6th Generation",
	"7th Generation",
}

var cpuCodenames = []string{
	"Ivytown", "Haswell", "Fortville",
	"Devil's Canyon", "Valley Island",
	"Broadwell", "Bay Trail", "Skylake",
	"Orchid Island", "Bear Ridge",
	"Cannonlake",
}

var ramTypes = []string{"DDR2", "DDR3", "DDR4"}

var ramSizes = []string{"4GB", "6GB", "8GB", "16GB", "32GB"}

var drives = []string{
	"64GB SSD", "128GB SSD",
	"256GB SSD", "512GB SSD", "1024GB SSD",
	"256GB HDD", "256GB HDD(7200 RPM)",
	"256GB HDD(5400 RPM)", "512GB HDD",
	"512GB HDD(7200 RPM)", "1TB HDD",
	"1TB HDD(7200 RPM)", "1TB HDD + 64GB SSD",
	"2TB HDD(7200 RPM)", "512GB HDD + 32GB SSD",
	"1TB HDD(7200 RPM) + 32GB SSD",
}

var graphics = []string{
	"Intel® HD Graphics 620",
	"Intel® HD Graphics 615",
	"Intel® Iris™ Pro Graphics 580",
	"Intel® Iris™ Graphics 550",
	"Intel® HD Graphics 520",
	"Intel® Iris™ Pro Graphics 6200",
	"Intel® Iris™ Graphics 6100",
	"Intel® HD Graphics 6000",
	"Intel® HD Graphics 5300",
	"Intel® Iris™ Pro Graphics 5200",
	"Intel® Iris™ Graphics 5100",
	"Intel® HD Graphics 5500",
	"Intel® HD Graphics 5000",
	"Intel® HD Graphics 4600",
	"Intel® HD Graphics 4400",
	"Intel® HD Graphics 4000",
	"Intel® HD Graphics 3000",
	"NVIDIA GeForce GTX 1080",
	"NVIDIA GeForce GTX 1070",
	"NVIDIA GeForce GTX 980",
	"NVIDIA GeForce GTX 980M",
	"NVIDIA GeForce GTX 970M",
	"NVIDIA GeForce GTX 880M",
	"AMD Radeon R9 M395X",
	"AMD Radeon R9 M485X",
	"AMD Radeon R9 M395",
}

var manufacturers = []string{
	"Acer", "Dell", "ASUS",
	"VAIO", "Lenovo", "HP",
	"Toshiba", "Sony", "Samsung",
	"Fujitsu", "Apple",
}

// =============================================================================
// Static Data — Personal
// =============================================================================

// telephoneMasks holds per-locale number masks; '#' is a digit in 1-9.
var telephoneMasks = map[string]string{
	"ru_ru": "+7-(###)###-##-##",
	"de_de": "+49-(###)###-##-##",
}

const defaultTelephoneMask = "+#-(###)###-##-##"

const avatarURL = "https://raw.githubusercontent.com/lk-geimfari/church/master/examples/avatars/%d.png"

// addressLayouts composes a street address per locale. Locales without an
// entry use "number name suffix".
var addressLayouts = map[string]func(number, name, suffix string) string{
	"ru_ru": func(number, name, suffix string) string { return suffix + " " + name + " " + number },
	"de_de": func(number, name, suffix string) string { return name + suffix + " " + number },
}
