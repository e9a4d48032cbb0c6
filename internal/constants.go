package internal

// ApplicationName is the name of the command line tool, also used for config discovery and env var prefixes.
const ApplicationName = "libversion"
