package export

import (
	"testing"

	"go.uber.org/goleak"
)

// Page renders fan out through an errgroup; none may outlive Run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
