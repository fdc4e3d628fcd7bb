package payment_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
	"github.com/frahmantamala/dorm-management/internal/payment"
)

type mockPayerDirectory struct {
	byEmail    map[string]*user.User
	payers     []*user.User
	listError  error
	emailError error
}

func (m *mockPayerDirectory) GetByEmail(email string) (*user.User, error) {
	if m.emailError != nil {
		return nil, m.emailError
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (m *mockPayerDirectory) ListPayers() ([]*user.User, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.payers, nil
}

type mockOutstanding struct {
	totals map[int64]decimal.Decimal
	errors map[int64]error
}

func (m *mockOutstanding) OutstandingTotal(userID int64) (decimal.Decimal, error) {
	if err, ok := m.errors[userID]; ok {
		return decimal.Zero, err
	}
	return m.totals[userID], nil
}

var _ = Describe("UserResolver", func() {
	var (
		directory   *mockPayerDirectory
		outstanding *mockOutstanding
		resolver    *payment.UserResolver
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		directory = &mockPayerDirectory{
			byEmail: make(map[string]*user.User),
		}
		outstanding = &mockOutstanding{
			totals: make(map[int64]decimal.Decimal),
			errors: make(map[int64]error),
		}
		resolver = payment.NewUserResolver(directory, outstanding, logger)
	})

	Context("with a correlation token", func() {
		It("resolves by email lookup", func() {
			directory.byEmail["rahim@dorm.edu"] = &user.User{ID: 11, Email: "rahim@dorm.edu"}

			userID, err := resolver.Resolve(context.Background(), "rahim@dorm.edu", "8500.00")

			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(11)))
		})

		It("fails when the token matches no user instead of falling back", func() {
			directory.payers = []*user.User{{ID: 11}}
			outstanding.totals[11] = decimal.RequireFromString("8500.00")

			_, err := resolver.Resolve(context.Background(), "unknown@dorm.edu", "8500.00")

			Expect(err).To(MatchError(payment.ErrPayerNotFound))
		})
	})

	Context("with amount matching fallback", func() {
		BeforeEach(func() {
			directory.payers = []*user.User{{ID: 1}, {ID: 2}, {ID: 3}}
		})

		It("resolves the single payer whose outstanding total equals the amount", func() {
			outstanding.totals[1] = decimal.RequireFromString("5000.00")
			outstanding.totals[2] = decimal.RequireFromString("8500.00")
			outstanding.totals[3] = decimal.RequireFromString("12000.00")

			userID, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(2)))
		})

		It("matches on numeric value, not string form", func() {
			outstanding.totals[1] = decimal.RequireFromString("8500")

			userID, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(1)))
		})

		It("fails closed when two payers owe the same total", func() {
			outstanding.totals[1] = decimal.RequireFromString("8500.00")
			outstanding.totals[2] = decimal.RequireFromString("8500.00")

			_, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).To(MatchError(payment.ErrAmbiguousPayer))
		})

		It("skips payers with nothing outstanding", func() {
			outstanding.totals[1] = decimal.Zero
			outstanding.totals[2] = decimal.RequireFromString("8500.00")

			userID, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(int64(2)))
		})

		It("fails when no payer matches", func() {
			outstanding.totals[1] = decimal.RequireFromString("100.00")

			_, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).To(MatchError(payment.ErrPayerNotFound))
		})

		It("fails when the amount is not a decimal", func() {
			_, err := resolver.Resolve(context.Background(), "", "not-a-number")

			Expect(err).To(MatchError(payment.ErrPayerNotFound))
		})

		It("aborts when any candidate's outstanding total cannot be computed", func() {
			outstanding.totals[1] = decimal.RequireFromString("8500.00")
			outstanding.errors[2] = errors.New("fee schedule missing")

			_, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(payment.ErrPayerNotFound))
		})

		It("propagates a directory listing failure", func() {
			directory.listError = errors.New("db down")

			_, err := resolver.Resolve(context.Background(), "", "8500.00")

			Expect(err).To(MatchError(directory.listError))
		})
	})
})
