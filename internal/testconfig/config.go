package testconfig

import (
	"os"
	"strconv"
	"testing"
)

const PARALLEL_TESTS_ENV_VAR = "RSON_PARALLEL_TESTS"

var (
	parallelizeSamePkgTests = parseBoolEnv(PARALLEL_TESTS_ENV_VAR)
)

// AllowParallelization marks the test as parallel if parallelization is enabled, see RSON_PARALLEL_TESTS.
func AllowParallelization(t *testing.T) {
	if parallelizeSamePkgTests {
		t.Parallel()
	}
}

func parseBoolEnv(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}
