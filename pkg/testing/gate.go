package testing

import (
	"os"
	"testing"
)

// IntegrationEnv must be set to "1" to run tests that start containers.
const IntegrationEnv = "ADDSUB_IT"

// RequireIntegration skips tb unless container-backed tests are enabled.
func RequireIntegration(tb testing.TB) {
	tb.Helper()
	if os.Getenv(IntegrationEnv) != "1" {
		tb.Skipf("set %s=1 to run container-backed tests", IntegrationEnv)
	}
}
