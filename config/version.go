package config

var (
	Version    string = "dev"
	CommitHash string = ""
)

// IsDevelopment reports whether this is a development build.
func IsDevelopment() bool {
	return Version == "dev"
}
