package log_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/AhmadAlHallak/defer-go/internal/log"
)

// The actual test suite.
var _ = t.Describe("Log", func() {
	var hook *test.Hook

	BeforeEach(func() {
		hook = test.NewGlobal()
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetOutput(GinkgoWriter)
	})

	AfterEach(func() {
		hook.Reset()
	})

	It("should attach the context fields", func() {
		// Given
		ctx := log.WithFields(context.Background(),
			logrus.Fields{"step": "teardown"})

		// When
		log.Infof(ctx, "running %d actions", 2)

		// Then
		Expect(hook.LastEntry().Message).To(Equal("running 2 actions"))
		Expect(hook.LastEntry().Data).To(HaveKeyWithValue("step", "teardown"))
	})

	It("should log without fields for a plain context", func() {
		// When
		log.Debugf(context.Background(), "no fields")

		// Then
		Expect(hook.LastEntry().Message).To(Equal("no fields"))
		Expect(hook.LastEntry().Data).To(BeEmpty())
	})

	It("should tolerate a nil context", func() {
		// When
		log.Warnf(nil, "no context") //nolint:staticcheck

		// Then
		Expect(hook.LastEntry().Message).To(Equal("no context"))
	})
})
