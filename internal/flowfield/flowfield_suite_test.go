package flowfield_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFlowfield(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flowfield Suite")
}
