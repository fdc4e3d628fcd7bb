package postgres

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
)

func TestFeeRepository(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Fee Repository Suite")
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())

	err = db.AutoMigrate(&fee.Schedule{}, &fee.HallFee{}, &fee.DiningFee{})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())

	return db
}

var _ = ginkgo.Describe("FeeRepository", func() {
	var (
		db   *gorm.DB
		repo *FeeRepository
	)

	ginkgo.BeforeEach(func() {
		db = setupTestDB()
		repo = NewFeeRepository(db)
	})

	ginkgo.Describe("schedules", func() {
		ginkgo.It("stores and resolves a schedule by its composite key", func() {
			schedule := &fee.Schedule{
				Category:      string(fee.CategoryHall),
				Year:          2026,
				ResidencyType: user.ResidencyResident,
				Amount:        decimal.RequireFromString("5000.00"),
				CreatedAt:     time.Now(),
			}
			gomega.Expect(repo.CreateSchedule(schedule)).To(gomega.Succeed())

			found, err := repo.GetSchedule(fee.CategoryHall, 2026, user.ResidencyResident)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Amount.Equal(schedule.Amount)).To(gomega.BeTrue())
		})

		ginkgo.It("misses on a different residency type", func() {
			schedule := &fee.Schedule{
				Category:      string(fee.CategoryHall),
				Year:          2026,
				ResidencyType: user.ResidencyResident,
				Amount:        decimal.RequireFromString("5000.00"),
			}
			gomega.Expect(repo.CreateSchedule(schedule)).To(gomega.Succeed())

			_, err := repo.GetSchedule(fee.CategoryHall, 2026, user.ResidencyAttached)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("rejects a second schedule for the same key", func() {
			first := &fee.Schedule{
				Category:      string(fee.CategoryHall),
				Year:          2026,
				ResidencyType: user.ResidencyResident,
				Amount:        decimal.RequireFromString("5000.00"),
			}
			gomega.Expect(repo.CreateSchedule(first)).To(gomega.Succeed())

			dup := &fee.Schedule{
				Category:      string(fee.CategoryHall),
				Year:          2026,
				ResidencyType: user.ResidencyResident,
				Amount:        decimal.RequireFromString("6000.00"),
			}
			gomega.Expect(repo.CreateSchedule(dup)).NotTo(gomega.Succeed())
		})

		ginkgo.It("lists every schedule", func() {
			for _, category := range []fee.Category{fee.CategoryHall, fee.CategoryDining} {
				schedule := &fee.Schedule{
					Category:      string(category),
					Year:          2026,
					ResidencyType: user.ResidencyResident,
					Amount:        decimal.RequireFromString("1000.00"),
				}
				gomega.Expect(repo.CreateSchedule(schedule)).To(gomega.Succeed())
			}

			schedules, err := repo.ListSchedules()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(schedules).To(gomega.HaveLen(2))
		})
	})

	ginkgo.Describe("fee records", func() {
		ginkgo.BeforeEach(func() {
			hall := &fee.HallFee{UserID: 1, Year: 2026, Status: fee.StatusUnpaid}
			dining := &fee.DiningFee{UserID: 1, Year: 2026, Status: fee.StatusUnpaid}
			gomega.Expect(repo.CreateHallFee(hall)).To(gomega.Succeed())
			gomega.Expect(repo.CreateDiningFee(dining)).To(gomega.Succeed())
		})

		ginkgo.It("finds unpaid fees only for the owning user", func() {
			other := &fee.HallFee{UserID: 2, Year: 2026, Status: fee.StatusUnpaid}
			gomega.Expect(repo.CreateHallFee(other)).To(gomega.Succeed())

			fees, err := repo.FindUnpaidHallFees(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fees).To(gomega.HaveLen(1))
			gomega.Expect(fees[0].UserID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("excludes paid fees from the unpaid query", func() {
			fees, err := repo.FindUnpaidHallFees(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.MarkHallFeePaid(fees[0].ID)).To(gomega.Succeed())

			fees, err = repo.FindUnpaidHallFees(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fees).To(gomega.BeEmpty())
		})

		ginkgo.It("marking paid keeps the row visible in the full listing", func() {
			fees, err := repo.FindUnpaidDiningFees(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.MarkDiningFeePaid(fees[0].ID)).To(gomega.Succeed())

			all, err := repo.ListDiningFees(1)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(1))
			gomega.Expect(all[0].Status).To(gomega.Equal(fee.StatusPaid))
		})

		ginkgo.It("reports existence per user and year", func() {
			exists, err := repo.HallFeeExists(1, 2026)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())

			exists, err = repo.HallFeeExists(1, 2027)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeFalse())
		})
	})
})
