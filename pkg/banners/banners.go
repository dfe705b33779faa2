package banners

import (
	"fmt"

	"github.com/common-fate/deflector/internal/build"
)

func WithVersion() string {
	return fmt.Sprintf("deflector version: %s (commit %s, built %s by %s)\n", build.Version, build.Commit, build.Date, build.BuiltBy)
}
