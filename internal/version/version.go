package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/NovaOrdis/std.shlib/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/NovaOrdis/std.shlib/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/NovaOrdis/std.shlib/internal/version.Date={{.Date}}
)
