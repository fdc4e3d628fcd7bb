package payment_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/dorm-management/internal/payment"
)

type stubEngine struct {
	successResult payment.Result
	failResult    payment.Result
	cancelResult  payment.Result
	lastParams    payment.CallbackParams
}

func (s *stubEngine) ProcessSuccess(ctx context.Context, params payment.CallbackParams) payment.Result {
	s.lastParams = params
	return s.successResult
}

func (s *stubEngine) ProcessFailure(params payment.CallbackParams) payment.Result {
	s.lastParams = params
	return s.failResult
}

func (s *stubEngine) ProcessCancel(params payment.CallbackParams) payment.Result {
	s.lastParams = params
	return s.cancelResult
}

var _ = Describe("PaymentHandler", func() {
	var (
		engine  *stubEngine
		handler *payment.Handler
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		engine = &stubEngine{
			successResult: payment.Result{
				Success:     true,
				State:       payment.StateSettled,
				RedirectURL: "/payment-success?tran_id=TXN-1",
			},
			failResult: payment.Result{
				State:       payment.StateRejectedInvalid,
				RedirectURL: "/payment-error",
			},
			cancelResult: payment.Result{
				State:       payment.StateRejectedInvalid,
				RedirectURL: "/payment-error",
			},
		}
		handler = payment.NewHandler(logger, engine)
	})

	postForm := func(h http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/payment/ipn/success",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec
	}

	Describe("SuccessCallback", func() {
		It("maps the gateway form fields and redirects to the engine result", func() {
			form := url.Values{}
			form.Set("tran_id", "TXN-1")
			form.Set("val_id", "VAL-1")
			form.Set("status", "VALID")
			form.Set("amount", "8500.00")
			form.Set("currency", "BDT")
			form.Set("value_a", "rahim@dorm.edu")
			form.Set("card_type", "BKASH")

			rec := postForm(handler.SuccessCallback, form)

			Expect(rec.Code).To(Equal(http.StatusSeeOther))
			Expect(rec.Header().Get("Location")).To(Equal("/payment-success?tran_id=TXN-1"))
			Expect(engine.lastParams.TransactionID).To(Equal("TXN-1"))
			Expect(engine.lastParams.ValidationID).To(Equal("VAL-1"))
			Expect(engine.lastParams.CorrelationToken).To(Equal("rahim@dorm.edu"))
			Expect(engine.lastParams.PaymentMethod).To(Equal("BKASH"))
			Expect(engine.lastParams.Raw).To(HaveKeyWithValue("amount", "8500.00"))
		})

		It("redirects to the error page when the engine rejects", func() {
			engine.successResult = payment.Result{
				State:       payment.StateRejectedUnresolvedUser,
				RedirectURL: "/payment-error",
			}

			rec := postForm(handler.SuccessCallback, url.Values{"tran_id": {"TXN-1"}})

			Expect(rec.Code).To(Equal(http.StatusSeeOther))
			Expect(rec.Header().Get("Location")).To(Equal("/payment-error"))
		})

		It("still answers with a redirect for an empty form", func() {
			rec := postForm(handler.SuccessCallback, url.Values{})

			Expect(rec.Code).To(Equal(http.StatusSeeOther))
		})
	})

	Describe("FailCallback", func() {
		It("forwards to the failure flow", func() {
			rec := postForm(handler.FailCallback, url.Values{"tran_id": {"TXN-9"}, "status": {"FAILED"}})

			Expect(rec.Code).To(Equal(http.StatusSeeOther))
			Expect(rec.Header().Get("Location")).To(Equal("/payment-error"))
			Expect(engine.lastParams.Status).To(Equal("FAILED"))
		})
	})

	Describe("CancelCallback", func() {
		It("forwards to the cancel flow", func() {
			rec := postForm(handler.CancelCallback, url.Values{"tran_id": {"TXN-9"}})

			Expect(rec.Code).To(Equal(http.StatusSeeOther))
			Expect(rec.Header().Get("Location")).To(Equal("/payment-error"))
			Expect(engine.lastParams.TransactionID).To(Equal("TXN-9"))
		})
	})
})
