package cleaner_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AhmadAlHallak/defer-go/internal/cleaner"
)

// The actual test suite.
var _ = t.Describe("Cleaner", func() {
	It("should call the cleanup functions", func() {
		// Given
		sut := cleaner.New()
		called1 := false
		called2 := false
		sut.Add(context.Background(), "test1", func() error {
			called1 = true
			return nil
		})
		sut.Add(context.Background(), "test2", func() error {
			called2 = true
			return nil
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).To(BeNil())
		Expect(called1).To(BeTrue())
		Expect(called2).To(BeTrue())
	})

	It("should run the cleanup functions in reverse order", func() {
		// Given
		sut := cleaner.New()
		var order []string
		sut.Add(context.Background(), "test1", func() error {
			order = append(order, "test1")
			return nil
		})
		sut.Add(context.Background(), "test2", func() error {
			order = append(order, "test2")
			return nil
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).To(BeNil())
		Expect(order).To(Equal([]string{"test2", "test1"}))
	})

	It("should retry the cleanup functions", func() {
		// Given
		sut := cleaner.New()
		called1 := false
		called2 := false
		sut.Add(context.Background(), "test1", func() error {
			called1 = true
			return nil
		})
		failureCnt := 0
		sut.Add(context.Background(), "test2", func() error {
			if failureCnt == 2 {
				called2 = true
				return nil
			}
			failureCnt++
			return errors.New("")
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).To(BeNil())
		Expect(called1).To(BeTrue())
		Expect(called2).To(BeTrue())
		Expect(failureCnt).To(Equal(2))
	})

	It("should retry three times", func() {
		// Given
		sut := cleaner.New()
		failureCnt := 0
		sut.Add(context.Background(), "test", func() error {
			failureCnt++
			return errors.New("")
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).NotTo(BeNil())
		Expect(failureCnt).To(Equal(3))
	})

	It("should aggregate independent failures", func() {
		// Given
		sut := cleaner.New()
		sut.Add(context.Background(), "test1", func() error {
			return errors.New("first error")
		})
		sut.Add(context.Background(), "test2", func() error {
			return errors.New("second error")
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring("first error"))
		Expect(err.Error()).To(ContainSubstring("second error"))
	})

	It("should stop retrying on a canceled context", func() {
		// Given
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sut := cleaner.New()
		calls := 0
		sut.Add(ctx, "test", func() error {
			calls++
			return nil
		})

		// When
		err := sut.Cleanup()

		// Then
		Expect(err).NotTo(BeNil())
		Expect(err.Error()).To(ContainSubstring(context.Canceled.Error()))
		Expect(calls).To(BeZero())
	})
})
