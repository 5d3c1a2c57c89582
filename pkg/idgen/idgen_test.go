package idgen_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/project-tracker/pkg/idgen"
)

var _ = Describe("NewID", func() {
	It("should join a timestamp component and a random component", func() {
		id := idgen.NewID()

		parts := strings.Split(id, "-")
		Expect(parts).To(HaveLen(2))
		Expect(parts[0]).ToNot(BeEmpty())
		Expect(parts[1]).To(HaveLen(8))
	})

	It("should not collide across many calls in one process", func() {
		seen := make(map[string]bool)
		for i := 0; i < 10000; i++ {
			id := idgen.NewID()
			Expect(seen[id]).To(BeFalse(), "duplicate id %s", id)
			seen[id] = true
		}
	})
})
